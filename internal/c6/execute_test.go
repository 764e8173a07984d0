package c6

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute(t *testing.T) {
	text := `oligo fwd ATTGACCTGCTTCGGCAT
oligo rev GTCGATGCCTTGAACCTG
plasmid pTP1 CAGGTTCAAGGCATCGACTTTTATTGACCTGCTTCGGCATGGGG

PCR fwd rev on pTP1 amp
Transform amp Mach1 Amp final`

	products, err := Execute(Parse(text), DefaultSettings())
	require.NoError(t, err)
	require.Len(t, products, 2)

	want := "ATTGACCTGCTTCGGCAT" + "GGGG" + "CAGGTTCAAGGCATCGAC"
	assert.Equal(t, Product{Name: "amp", Sequence: want}, products[0])

	// transform passes the molecule through untouched
	assert.Equal(t, Product{Name: "final", Sequence: want}, products[1])
}

func TestExecute_goldenGate(t *testing.T) {
	text := `dsdna part1 ccaaaGGTCTCAGCTTTGATCGATTCAACCTACTTCCCCTTCATAATCGGTACTAGAGACCacgac
dsdna part2 GGTCTCATACTCAAAATTTACTGACTGGACATGGTCACCACTTAAGTAAGCTTTGAGACC

Assemble part1 part2 BsaI pOut`

	products, err := Execute(Parse(text), DefaultSettings())
	require.NoError(t, err)
	require.Len(t, products, 1)

	want := "GCTTTGATCGATTCAACCTACTTCCCCTTCATAATCGGTACTCAAAATTTACTGACTGGACATGGTCACCACTTAAGTAA"
	assert.Equal(t, Product{Name: "pOut", Sequence: want, IsCircular: true}, products[0])
}

func TestExecute_gibson(t *testing.T) {
	fragA := gibsonArmA + gibsonBodyA + gibsonArmB
	fragB := gibsonArmB + gibsonBodyB + gibsonArmC
	fragC := gibsonArmC + gibsonBodyC + gibsonArmA

	// Gibson is the enzyme-less assembly chemistry
	text := "dsdna fA " + fragA + "\ndsdna fB " + fragB + "\ndsdna fC " + fragC + "\nGibson fA fB fC pOut"

	products, err := Execute(Parse(text), DefaultSettings())
	require.NoError(t, err)
	require.Len(t, products, 1)

	circle := gibsonArmA + gibsonBodyA + gibsonArmB + gibsonBodyB + gibsonArmC + gibsonBodyC
	assert.Equal(t, Product{Name: "pOut", Sequence: circle, IsCircular: true}, products[0])
}

func TestExecute_digestLigate(t *testing.T) {
	plasmid := "TTC" + strings.Repeat("T", 28) + "GGATCC" + strings.Repeat("A", 11) + "GAA"

	text := "plasmid pKan " + plasmid + `
Digest pKan EcoRI,BamHI 0 linA
Digest pKan EcoRI,BamHI 1 linB
Ligate linA linB pBack`

	products, err := Execute(Parse(text), DefaultSettings())
	require.NoError(t, err)
	require.Len(t, products, 3)

	assert.Equal(t, "C"+strings.Repeat("A", 11)+"G", products[0].Sequence)
	assert.Equal(t, "C"+strings.Repeat("T", 28)+"G", products[1].Sequence)

	// the religated plasmid is the original, rotated to the first ligation
	// junction
	back := products[2]
	assert.True(t, back.IsCircular)
	require.Len(t, back.Sequence, len(plasmid))
	assert.Contains(t, plasmid+plasmid, back.Sequence)
}

func TestExecute_blunt(t *testing.T) {
	plasmid := "TTC" + strings.Repeat("T", 28) + "GGATCC" + strings.Repeat("A", 11) + "GAA"

	text := "plasmid pKan " + plasmid + `
Digest pKan EcoRI,BamHI 1 lin
Blunt lin filled`

	products, err := Execute(Parse(text), DefaultSettings())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "AATT"+"C"+strings.Repeat("T", 28)+"G"+"GATC", products[1].Sequence)
}

func TestExecute_shadowing(t *testing.T) {
	// a step output shadows a declared sequence of the same name for every
	// later step
	text := `oligo fwd ATTGACCTGCTTCGGCAT
oligo rev GTCGATGCCTTGAACCTG
plasmid amp CAGGTTCAAGGCATCGACTTTTATTGACCTGCTTCGGCATGGGG

PCR fwd rev on amp amp
Transform amp final`

	products, err := Execute(Parse(text), DefaultSettings())
	require.NoError(t, err)
	require.Len(t, products, 2)

	want := "ATTGACCTGCTTCGGCAT" + "GGGG" + "CAGGTTCAAGGCATCGAC"
	assert.Equal(t, want, products[1].Sequence)
}

func TestExecute_errors(t *testing.T) {
	type args struct {
		text string
	}
	tests := []struct {
		name    string
		args    args
		wantErr error
	}{
		{
			"unknown reference",
			args{"PCR fwd rev tmpl out"},
			ErrMissingSequence,
		},
		{
			"primers that do not anneal",
			args{`oligo fwd CACCTACGCTTGGTAGGA
oligo rev GTCGATGCCTTGAACCTG
plasmid tmpl CAGGTTCAAGGCATCGACTTTTATTGACCTGCTTCGGCATGGGG
PCR fwd rev tmpl out`},
			ErrNoAnneal,
		},
		{
			"digest with unknown enzyme",
			args{`plasmid tmpl CAGGTTCAAGGCATCGACTTTTATTGACCTGCTTCGGCATGGGG
Digest tmpl NoSuchEnzyme 0 out`},
			ErrUnknownEnzyme,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := Execute(Parse(tt.args.text), DefaultSettings())
			assert.ErrorIs(t, err, tt.wantErr)

			// a failing step returns no products, not the partial run
			assert.Nil(t, products)
		})
	}
}
