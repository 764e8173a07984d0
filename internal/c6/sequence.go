// Package c6 simulates recombinant-DNA construction workflows. Given a
// Construction File of steps (PCR, digestion, Golden Gate or Gibson assembly)
// and the starting sequences they reference, it predicts the exact product
// sequence of every step.
package c6

import (
	"fmt"
	"strings"
)

// complements maps each IUPAC nucleotide code to its complement. Ambiguity
// codes complement symmetrically: R (A/G) pairs with Y (C/T), S and W with
// themselves, N with N.
var complements = map[byte]byte{
	'A': 'T',
	'C': 'G',
	'G': 'C',
	'T': 'A',
	'U': 'A',
	'R': 'Y',
	'Y': 'R',
	'S': 'S',
	'W': 'W',
	'K': 'M',
	'M': 'K',
	'B': 'V',
	'V': 'B',
	'D': 'H',
	'H': 'D',
	'N': 'N',
}

// resolveSeq validates a raw sequence against the IUPAC nucleotide alphabet
// and returns it canonicalized to uppercase
func resolveSeq(input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%w: empty input", ErrInvalidSequence)
	}

	seq := strings.ToUpper(strings.TrimSpace(input))
	for i := 0; i < len(seq); i++ {
		if _, ok := complements[seq[i]]; !ok {
			return "", fmt.Errorf("%w: %q at index %d of %s", ErrInvalidSequence, seq[i], i, seq)
		}
	}

	return seq, nil
}

// revComp returns the reverse complement of a sequence, complementing
// ambiguity codes symmetrically
func revComp(seq string) (string, error) {
	seq = strings.ToUpper(seq)

	comp := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		c, ok := complements[seq[i]]
		if !ok {
			return "", fmt.Errorf("%w: %q in %s", ErrInvalidCharacter, seq[i], seq)
		}
		comp[len(seq)-i-1] = c
	}

	return string(comp), nil
}

// mustRevComp is revComp for sequences already known to be canonical
func mustRevComp(seq string) string {
	rc, err := revComp(seq)
	if err != nil {
		panic(err) // unreachable for resolved sequences
	}
	return rc
}

// isPalindromic is whether a sequence equals its own reverse complement
func isPalindromic(seq string) bool {
	rc, err := revComp(seq)

	return err == nil && rc == strings.ToUpper(seq)
}
