package c6

import (
	"fmt"
	"strings"
)

// stickyFrag is a linear stretch of DNA flanked by two sticky ends, the unit
// joined during ligation. Both ends are written as top-strand sequence so
// that a 3' end ligates to a 5' end exactly when the strings are equal
type stickyFrag struct {
	end5 string
	body string
	end3 string
}

// goldenGate simulates a Golden Gate reaction: every input fragment is cut
// with the one Type IIS enzyme, leaving a pool of sticky fragments that
// ligate into a single circular product
func goldenGate(inputs []Polynucleotide, enzymeName string) (Polynucleotide, error) {
	enz, err := lookupEnzyme(enzymeName)
	if err != nil {
		return Polynucleotide{}, err
	}

	frags := make([]stickyFrag, len(inputs))
	for i, input := range inputs {
		frag, err := excise(input, enz)
		if err != nil {
			return Polynucleotide{}, err
		}
		frags[i] = frag
	}

	return ligateChain(frags)
}

// excise cuts one fragment out of its carrier with a Type IIS enzyme. The
// carrier must have exactly one site on each strand; the part between the two
// cuts is kept, its flanks (still carrying the recognition sites) discarded.
// A fragment whose insert sits on the bottom strand is flipped first
func excise(p Polynucleotide, enz enzyme) (stickyFrag, error) {
	seq := p.Sequence

	if n := strings.Count(seq, enz.recognition); n != 1 {
		return stickyFrag{}, fmt.Errorf(
			"%w: %d forward %s sites in fragment, expected 1", ErrAmbiguousAssembly, n, enz.name)
	}
	if n := strings.Count(seq, enz.recognitionRC); n != 1 {
		return stickyFrag{}, fmt.Errorf(
			"%w: %d reverse %s sites in fragment, expected 1", ErrAmbiguousAssembly, n, enz.name)
	}

	fi := strings.Index(seq, enz.recognition)
	ri := strings.Index(seq, enz.recognitionRC)
	if ri < fi {
		// insert is on the bottom strand
		seq = mustRevComp(seq)
		fi = strings.Index(seq, enz.recognition)
		ri = strings.Index(seq, enz.recognitionRC)
	}

	siteLen := len(enz.recognition)
	lo5, hi5 := ordered(fi+siteLen+enz.cut5, fi+siteLen+enz.cut3)
	lo3, hi3 := ordered(ri-enz.cut5, ri-enz.cut3)

	if lo5 < 0 || hi3 > len(seq) || hi5 > lo3 {
		return stickyFrag{}, fmt.Errorf(
			"%w: %s cuts fall outside the fragment", ErrAmbiguousAssembly, enz.name)
	}

	frag := stickyFrag{
		end5: seq[lo5:hi5],
		body: seq[hi5:lo3],
		end3: seq[lo3:hi3],
	}

	// a self-complementary end cannot uniquely determine a joining partner
	if isPalindromic(frag.end5) {
		return stickyFrag{}, fmt.Errorf("%w: %s", ErrPalindromicEnd, frag.end5)
	}
	if isPalindromic(frag.end3) {
		return stickyFrag{}, fmt.Errorf("%w: %s", ErrPalindromicEnd, frag.end3)
	}

	return frag, nil
}

// ligateChain orders sticky fragments into a single closed chain, matching
// each fragment's 3' end to the next one's 5' end, and concatenates them into
// a circular product. The chain starts at the lexicographically smallest 5'
// end: an arbitrary but stable tie-break, not a biological property
func ligateChain(frags []stickyFrag) (Polynucleotide, error) {
	by5 := make(map[string]int, len(frags))
	by3 := make(map[string]int, len(frags))
	for i, frag := range frags {
		if _, dup := by5[frag.end5]; dup {
			return Polynucleotide{}, fmt.Errorf(
				"%w: 5' end %s shared by two fragments", ErrAmbiguousAssembly, frag.end5)
		}
		if _, dup := by3[frag.end3]; dup {
			return Polynucleotide{}, fmt.Errorf(
				"%w: 3' end %s shared by two fragments", ErrAmbiguousAssembly, frag.end3)
		}
		by5[frag.end5] = i
		by3[frag.end3] = i
	}

	start := 0
	for i, frag := range frags {
		if frag.end5 < frags[start].end5 {
			start = i
		}
	}

	product := ""
	used := make([]bool, len(frags))
	current := start
	for range frags {
		if used[current] {
			return Polynucleotide{}, fmt.Errorf(
				"%w: fragments form more than one circle", ErrNonClosingAssembly)
		}
		used[current] = true
		product += frags[current].end5 + frags[current].body

		next, ok := by5[frags[current].end3]
		if !ok {
			return Polynucleotide{}, fmt.Errorf(
				"%w: no fragment begins with %s", ErrNonClosingAssembly, frags[current].end3)
		}
		current = next
	}

	if current != start {
		return Polynucleotide{}, fmt.Errorf(
			"%w: last 3' end %s does not close the chain", ErrNonClosingAssembly, frags[current].end5)
	}

	return Polynucleotide{
		Sequence:         product,
		IsDoubleStranded: true,
		IsCircular:       true,
	}, nil
}

func ordered(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
