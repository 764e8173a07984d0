package c6

import (
	"reflect"
	"testing"
)

func Test_findCutSite(t *testing.T) {
	bsaI, _ := lookupEnzyme("BsaI")
	ecoRI, _ := lookupEnzyme("EcoRI")
	pstI, _ := lookupEnzyme("PstI")

	type args struct {
		seq      string
		enz      enzyme
		circular bool
	}
	tests := []struct {
		name      string
		args      args
		wantLo    int
		wantHi    int
		wantFound bool
	}{
		{
			"forward EcoRI site",
			args{"AAAGAATTCTTT", ecoRI, false},
			4, 8,
			true,
		},
		{
			"forward BsaI site cuts downstream",
			args{"AAGGTCTCAGCTTTTTT", bsaI, false},
			9, 13,
			true,
		},
		{
			"reverse BsaI site cuts upstream of its match",
			args{"AAAATTTTGAGACCTTT", bsaI, false},
			3, 7,
			true,
		},
		{
			"PstI leaves a 3' overhang within its site",
			args{"AAACTGCAGTTT", pstI, false},
			4, 8,
			true,
		},
		{
			"no site is not an error",
			args{"AAAATTTTCCCC", bsaI, false},
			0, 0,
			false,
		},
		{
			"linear site too close to the end is skipped",
			args{"AAGGTCTCAG", bsaI, false},
			0, 0,
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi, found := findCutSite(tt.args.seq, tt.args.enz, tt.args.circular)
			if found != tt.wantFound {
				t.Errorf("findCutSite() found = %v, want %v", found, tt.wantFound)
				return
			}
			if lo != tt.wantLo || hi != tt.wantHi {
				t.Errorf("findCutSite() = (%d, %d), want (%d, %d)", lo, hi, tt.wantLo, tt.wantHi)
			}
		})
	}
}

func Test_cutOnce(t *testing.T) {
	ecoRI, _ := lookupEnzyme("EcoRI")
	bsaI, _ := lookupEnzyme("BsaI")

	type args struct {
		p   Polynucleotide
		enz enzyme
	}
	tests := []struct {
		name    string
		args    args
		want    []Polynucleotide
		wantCut bool
	}{
		{
			"linear cut yields two phosphorylated fragments",
			args{
				Polynucleotide{
					Sequence:         "AAAGAATTCTTT",
					IsDoubleStranded: true,
					Mod5:             hydroxyl,
					Mod3:             hydroxyl,
				},
				ecoRI,
			},
			[]Polynucleotide{
				{
					Sequence:         "AAAG",
					Ext3:             "AATT",
					IsDoubleStranded: true,
					Mod5:             hydroxyl,
					Mod3:             phosphate,
				},
				{
					Sequence:         "CTTT",
					Ext5:             "AATT",
					IsDoubleStranded: true,
					Mod5:             phosphate,
					Mod3:             hydroxyl,
				},
			},
			true,
		},
		{
			"circular cut yields one re-rotated linear fragment",
			args{
				Polynucleotide{
					Sequence:         "TTTGAATTCAAA",
					IsDoubleStranded: true,
					IsCircular:       true,
				},
				ecoRI,
			},
			[]Polynucleotide{
				{
					Sequence:         "CAAATTTG",
					Ext5:             "AATT",
					Ext3:             "AATT",
					IsDoubleStranded: true,
					Mod5:             phosphate,
					Mod3:             phosphate,
				},
			},
			true,
		},
		{
			"no site means no cut",
			args{
				Polynucleotide{Sequence: "AAAACCCC", IsDoubleStranded: true},
				bsaI,
			},
			nil,
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, cut := cutOnce(tt.args.p, tt.args.enz)
			if cut != tt.wantCut {
				t.Errorf("cutOnce() cut = %v, want %v", cut, tt.wantCut)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("cutOnce() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
