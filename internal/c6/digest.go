package c6

import "fmt"

// digest cuts a molecule to completion with a set of enzymes and selects one
// of the resulting fragments by its left-to-right position. For a circular
// input, fragment 0 is the one beginning at position 0 after the first cut's
// re-rotation.
//
// Each pass scans the current fragments and applies the first enzyme that
// still cuts; the fragment is replaced in place by its children so positional
// order is preserved. The recognition-site count strictly decreases with
// every cut, so the loop terminates
func digest(input Polynucleotide, enzymeNames []string, fragSelect int) (Polynucleotide, error) {
	enzs := make([]enzyme, len(enzymeNames))
	for i, name := range enzymeNames {
		enz, err := lookupEnzyme(name)
		if err != nil {
			return Polynucleotide{}, err
		}
		enzs[i] = enz
	}

	frags := []Polynucleotide{input}
	for {
		cutMade := false

	scan:
		for i, frag := range frags {
			for _, enz := range enzs {
				products, ok := cutOnce(frag, enz)
				if !ok {
					continue
				}

				replaced := make([]Polynucleotide, 0, len(frags)+1)
				replaced = append(replaced, frags[:i]...)
				replaced = append(replaced, products...)
				replaced = append(replaced, frags[i+1:]...)
				frags = replaced

				cutMade = true
				break scan
			}
		}

		if !cutMade {
			break
		}
	}

	if fragSelect < 0 || fragSelect >= len(frags) {
		return Polynucleotide{}, fmt.Errorf(
			"%w: %d with %d fragments", ErrInvalidFragmentIndex, fragSelect, len(frags))
	}

	return frags[fragSelect], nil
}
