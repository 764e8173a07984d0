package c6

import (
	"fmt"
	"strings"
)

// pcr predicts the amplicon of a primer pair against a template.
//
// The 3'-most anneal bases of the forward primer are its annealing anchor.
// The anchor is located in the template, falling back to the template's
// reverse complement once; the template is then rotated to begin at the
// anchor. The reverse primer's anchor is the first anneal bases of its
// reverse complement (its own 3' end) and is located downstream in the
// rotated template. The product is the full forward primer, the rotated
// template span strictly between the two anchors, and the full reverse
// complement of the reverse primer
func pcr(forward, reverse string, template Polynucleotide, anneal int) (Polynucleotide, error) {
	fwd, err := resolveSeq(forward)
	if err != nil {
		return Polynucleotide{}, err
	}
	rev, err := resolveSeq(reverse)
	if err != nil {
		return Polynucleotide{}, err
	}

	fwdAnchor := fwd
	if len(fwd) > anneal {
		fwdAnchor = fwd[len(fwd)-anneal:]
	}

	tmpl := template.Sequence
	idx := strings.Index(tmpl, fwdAnchor)
	if idx < 0 {
		tmpl = mustRevComp(tmpl)
		idx = strings.Index(tmpl, fwdAnchor)
	}
	if idx < 0 {
		return Polynucleotide{}, fmt.Errorf(
			"%w: forward primer anchor %s not in template", ErrNoAnneal, fwdAnchor)
	}
	rotated := tmpl[idx:] + tmpl[:idx]

	revRC := mustRevComp(rev)
	revAnchor := revRC
	if len(revRC) > anneal {
		revAnchor = revRC[:anneal]
	}

	// search beyond the forward anchor so the span between the anchors is
	// well defined
	j := strings.Index(rotated[len(fwdAnchor):], revAnchor)
	if j < 0 {
		return Polynucleotide{}, fmt.Errorf(
			"%w: reverse primer anchor %s not in template", ErrNoAnneal, revAnchor)
	}
	between := rotated[len(fwdAnchor) : len(fwdAnchor)+j]

	return Polynucleotide{
		Sequence:         fwd + between + revRC,
		IsDoubleStranded: true,
		Mod5:             hydroxyl,
		Mod3:             hydroxyl,
	}, nil
}
