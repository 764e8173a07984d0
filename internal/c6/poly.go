package c6

import "fmt"

// terminal chemistry tags for the ends of a polynucleotide
const (
	// hydroxyl is the default (unphosphorylated) terminus
	hydroxyl = "hydroxyl"

	// phosphate is a 5' phosphate, left behind by a restriction cut and
	// required for ligation
	phosphate = "phos5"
)

// Polynucleotide is a single DNA/RNA molecule: a top-strand sequence written
// 5' to 3' plus its topology, strandedness and terminal chemistry.
//
// Transforms (cutting, reverse complementing, ligating) always produce a new
// value; a Polynucleotide is never mutated in place.
type Polynucleotide struct {
	// Sequence is the canonical top-strand sequence (5' to 3')
	Sequence string `json:"sequence"`

	// Ext5 is the single-stranded overhang at the 5' terminus, written as
	// the spanned top-strand sequence. Empty if the end is blunt or the
	// molecule is circular
	Ext5 string `json:"ext5"`

	// Ext3 is the single-stranded overhang at the 3' terminus, also written
	// as the spanned top-strand sequence
	Ext3 string `json:"ext3"`

	// IsDoubleStranded is false for oligos
	IsDoubleStranded bool `json:"isDoubleStranded"`

	// IsRNA is true for RNA molecules
	IsRNA bool `json:"isRNA"`

	// IsCircular is true for plasmids. Circular molecules have no termini
	// and therefore no overhangs or terminal modifications
	IsCircular bool `json:"isCircular"`

	// Mod5 is the chemical modification of the 5' terminus
	Mod5 string `json:"mod_ext5"`

	// Mod3 is the chemical modification of the 3' terminus
	Mod3 string `json:"mod_ext3"`
}

// newLinearDNA creates a blunt, hydroxyl-terminated, double-stranded linear
// molecule: the default interpretation of a raw sequence
func newLinearDNA(seq string) (Polynucleotide, error) {
	resolved, err := resolveSeq(seq)
	if err != nil {
		return Polynucleotide{}, err
	}

	return Polynucleotide{
		Sequence:         resolved,
		IsDoubleStranded: true,
		Mod5:             hydroxyl,
		Mod3:             hydroxyl,
	}, nil
}

// newOligo creates a single-stranded linear molecule
func newOligo(seq string) (Polynucleotide, error) {
	resolved, err := resolveSeq(seq)
	if err != nil {
		return Polynucleotide{}, err
	}

	return Polynucleotide{
		Sequence: resolved,
		Mod5:     hydroxyl,
		Mod3:     hydroxyl,
	}, nil
}

// newPlasmid creates a circular double-stranded molecule
func newPlasmid(seq string) (Polynucleotide, error) {
	resolved, err := resolveSeq(seq)
	if err != nil {
		return Polynucleotide{}, err
	}

	return Polynucleotide{
		Sequence:         resolved,
		IsDoubleStranded: true,
		IsCircular:       true,
	}, nil
}

// resolve turns an input into a Polynucleotide. A string is interpreted as a
// default blunt linear dsDNA molecule; a Polynucleotide passes through
// unchanged. Anything else fails with ErrResolution. This is the single
// boundary where the raw-sequence vs structured-molecule decision is made
func resolve(input interface{}) (Polynucleotide, error) {
	switch v := input.(type) {
	case Polynucleotide:
		return v, nil
	case *Polynucleotide:
		return *v, nil
	case string:
		return newLinearDNA(v)
	default:
		return Polynucleotide{}, fmt.Errorf("%w: %T", ErrResolution, input)
	}
}

// revCompPoly returns the molecule flipped to its opposite strand: the
// sequence and both overhangs are reverse complemented and the two termini
// swap places
func revCompPoly(p Polynucleotide) Polynucleotide {
	flipped := p
	flipped.Sequence = mustRevComp(p.Sequence)
	flipped.Ext5 = mustRevComp(p.Ext3)
	flipped.Ext3 = mustRevComp(p.Ext5)
	flipped.Mod5 = p.Mod3
	flipped.Mod3 = p.Mod5

	return flipped
}

// canonicalRotation returns the lexicographically smallest rotation of a
// circular sequence
func canonicalRotation(seq string) string {
	doubled := seq + seq
	best := seq
	for i := 1; i < len(seq); i++ {
		if r := doubled[i : i+len(seq)]; r < best {
			best = r
		}
	}

	return best
}

// canonicalCircular normalizes a circular molecule's sequence: the smallest
// rotation of either orientation. Two circular sequences describe the same
// molecule exactly when their canonical forms are equal, so the form also
// works as a map or sort key
func canonicalCircular(seq string) string {
	top := canonicalRotation(seq)
	bottom := canonicalRotation(mustRevComp(seq))
	if bottom < top {
		return bottom
	}

	return top
}

// same is whether two polynucleotides describe the same molecule. Topology,
// strandedness and chemistry must match exactly. Circular molecules compare
// by canonical form, so rotation and orientation don't matter. Linear
// molecules compare directly or after reverse complementing, with the
// overhangs and modifications compared positionally once the orientation is
// fixed
func same(a, b Polynucleotide) bool {
	if a.IsCircular != b.IsCircular || a.IsDoubleStranded != b.IsDoubleStranded || a.IsRNA != b.IsRNA {
		return false
	}

	if a.IsCircular {
		return canonicalCircular(a.Sequence) == canonicalCircular(b.Sequence)
	}

	if a == b {
		return true
	}

	return revCompPoly(a) == b
}
