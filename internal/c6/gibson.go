package c6

import (
	"fmt"
	"strings"
)

// gibson simulates a homology-overlap (Gibson) assembly. Fragments join
// wherever the terminal homology arm of one appears inside another; rounds of
// joining continue until a single sequence remains.
//
// Each round produces one merged candidate per (ordered) pair of fragments
// whose arms match. A round producing as many candidates as it started with
// is the molecule closing on itself: the last candidate is dropped and the
// result marked circular. A round producing more candidates than fragments
// means the arms are shared by several joins and the assembly is ambiguous.
// Fewer is ordinary convergence. A single input always self-circularizes.
//
// homology is the fixed arm length. When the result never circularizes the
// call fails unless allowLinear is set
func gibson(inputs []Polynucleotide, homology int, allowLinear bool) (Polynucleotide, error) {
	working := make([]string, len(inputs))
	for i, p := range inputs {
		if len(p.Sequence) < homology {
			return Polynucleotide{}, fmt.Errorf(
				"%w: fragment shorter than the %dbp homology arm", ErrNonClosingAssembly, homology)
		}
		working[i] = p.Sequence
	}

	circular := len(working) == 1

	for len(working) > 1 {
		var candidates []string
		for i, a := range working {
			arm := a[len(a)-homology:]
			for j, b := range working {
				if i == j {
					continue
				}
				if k := strings.Index(b, arm); k >= 0 {
					candidates = append(candidates, a+b[k+homology:])
				}
			}
		}

		switch {
		case len(candidates) == 0:
			return Polynucleotide{}, fmt.Errorf(
				"%w: %d fragments share no homology arms", ErrNonClosingAssembly, len(working))
		case len(candidates) > len(working):
			return Polynucleotide{}, fmt.Errorf(
				"%w: homology arms joined %d ways from %d fragments",
				ErrAmbiguousAssembly, len(candidates), len(working))
		case len(candidates) == len(working):
			// every fragment extended something: the molecule is closing
			// on itself
			circular = true
			candidates = candidates[:len(candidates)-1]
		}

		working = candidates
	}

	seq := working[0]

	if !circular {
		if !allowLinear {
			return Polynucleotide{}, fmt.Errorf(
				"%w: assembly stayed linear", ErrNonClosingAssembly)
		}
		return Polynucleotide{
			Sequence:         seq,
			IsDoubleStranded: true,
			Mod5:             hydroxyl,
			Mod3:             hydroxyl,
		}, nil
	}

	// collapse the trailing self-overlap, closing the loop where the first
	// homology arm reappears
	arm := seq[:homology]
	j := strings.Index(seq[homology:], arm)
	if j < 0 {
		return Polynucleotide{}, fmt.Errorf(
			"%w: circularizing fragment does not repeat its %dbp arm", ErrNonClosingAssembly, homology)
	}

	return Polynucleotide{
		Sequence:         seq[:homology+j],
		IsDoubleStranded: true,
		IsCircular:       true,
	}, nil
}
