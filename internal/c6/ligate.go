package c6

// ligate joins already-cut molecules on their terminal overhangs into one
// closed circle. Fragments chain wherever a 3' overhang equals another
// fragment's 5' overhang, with the same ordering and closure rules as a
// Golden Gate ligation
func ligate(inputs []Polynucleotide) (Polynucleotide, error) {
	frags := make([]stickyFrag, len(inputs))
	for i, p := range inputs {
		frags[i] = stickyFrag{
			end5: p.Ext5,
			body: p.Sequence,
			end3: p.Ext3,
		}
	}

	return ligateChain(frags)
}

// blunt fills in the terminal overhangs of a linear molecule, producing a
// blunt-ended one. Circular and already-blunt molecules pass through
// unchanged
func blunt(p Polynucleotide) Polynucleotide {
	if p.IsCircular {
		return p
	}

	filled := p
	filled.Sequence = p.Ext5 + p.Sequence + p.Ext3
	filled.Ext5 = ""
	filled.Ext3 = ""

	return filled
}
