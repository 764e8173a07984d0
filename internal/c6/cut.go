package c6

import "strings"

// findCutSite locates the first usable recognition site for an enzyme in a
// top-strand sequence: forward occurrences are tried before reverse
// complement ones. The returned coordinates bound the staggered single
// stranded span seq[lo:hi] left between the two strand cuts. For a linear
// molecule an occurrence whose cut positions fall outside the sequence is
// skipped
func findCutSite(seq string, enz enzyme, circular bool) (lo, hi int, found bool) {
	siteLen := len(enz.recognition)

	searches := []struct {
		site    string
		forward bool
	}{
		{enz.recognition, true},
		{enz.recognitionRC, false},
	}

	for _, search := range searches {
		offset := 0
		for {
			i := strings.Index(seq[offset:], search.site)
			if i < 0 {
				break
			}
			i += offset

			// cut offsets are measured from the end of the site on the
			// strand where it was found, so a site on the bottom strand
			// cuts leftward of its top-strand match
			var top, bottom int
			if search.forward {
				top = i + siteLen + enz.cut5
				bottom = i + siteLen + enz.cut3
			} else {
				top = i - enz.cut5
				bottom = i - enz.cut3
			}

			lo, hi = top, bottom
			if lo > hi {
				lo, hi = hi, lo
			}

			if circular || (lo >= 0 && hi <= len(seq)) {
				return lo, hi, true
			}

			offset = i + 1
		}
	}

	return 0, 0, false
}

// cutOnce cuts a molecule at the first site of one enzyme. A circular input
// yields a single linear molecule re-rotated to begin immediately after the
// cut; a linear input yields two. The boolean is false when the enzyme has no
// site in the molecule (which is not an error). Every new terminus carries
// the produced overhang and a 5' phosphate
func cutOnce(p Polynucleotide, enz enzyme) ([]Polynucleotide, bool) {
	lo, hi, found := findCutSite(p.Sequence, enz, p.IsCircular)
	if !found {
		return nil, false
	}

	span := hi - lo

	if p.IsCircular {
		// walk the circle from the end of the cut back around to its start
		n := len(p.Sequence)
		doubled := p.Sequence + p.Sequence
		start := ((lo % n) + n) % n
		overhang := doubled[start : start+span]

		linear := Polynucleotide{
			Sequence:         doubled[start+span : start+n],
			Ext5:             overhang,
			Ext3:             overhang,
			IsDoubleStranded: p.IsDoubleStranded,
			IsRNA:            p.IsRNA,
			Mod5:             phosphate,
			Mod3:             phosphate,
		}
		return []Polynucleotide{linear}, true
	}

	overhang := p.Sequence[lo:hi]

	left := Polynucleotide{
		Sequence:         p.Sequence[:lo],
		Ext5:             p.Ext5,
		Ext3:             overhang,
		IsDoubleStranded: p.IsDoubleStranded,
		IsRNA:            p.IsRNA,
		Mod5:             p.Mod5,
		Mod3:             phosphate,
	}
	right := Polynucleotide{
		Sequence:         p.Sequence[hi:],
		Ext5:             overhang,
		Ext3:             p.Ext3,
		IsDoubleStranded: p.IsDoubleStranded,
		IsRNA:            p.IsRNA,
		Mod5:             phosphate,
		Mod3:             p.Mod3,
	}

	return []Polynucleotide{left, right}, true
}
