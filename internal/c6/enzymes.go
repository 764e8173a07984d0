package c6

import (
	"fmt"
	"sort"
	"strings"
)

// enzyme is a restriction enzyme: a recognition sequence and the signed cut
// offsets of the two strands, both measured from the end of the recognition
// site on the strand where it was found. A positive offset cuts downstream of
// the site (Type IIS), a negative one cuts within it.
type enzyme struct {
	name string

	// recognition sequence on the strand the enzyme binds
	recognition string

	// recognitionRC is the reverse complement, for finding sites on the
	// opposite strand. Computed once at registry initialization
	recognitionRC string

	// cut5 is the top-strand cut offset from the end of the site
	cut5 int

	// cut3 is the bottom-strand cut offset from the end of the site
	cut3 int

	// isFivePrime is whether the staggered cut leaves a 5' overhang
	// (cut5 < cut3). Derived at registry initialization
	isFivePrime bool
}

// enzymes is the fixed, process-wide read-only registry, keyed by
// lower-cased enzyme name
var enzymes = newEnzymeRegistry()

func newEnzymeRegistry() map[string]enzyme {
	table := []enzyme{
		{name: "AarI", recognition: "CACCTGC", cut5: 4, cut3: 8},
		{name: "BbsI", recognition: "GAAGAC", cut5: 2, cut3: 6},
		{name: "BsaI", recognition: "GGTCTC", cut5: 1, cut3: 5},
		{name: "BsmBI", recognition: "CGTCTC", cut5: 1, cut3: 5},
		{name: "SapI", recognition: "GCTCTTC", cut5: 1, cut3: 4},
		{name: "BseRI", recognition: "GAGGAG", cut5: 10, cut3: 8},
		{name: "BamHI", recognition: "GGATCC", cut5: -5, cut3: -1},
		{name: "BglII", recognition: "AGATCT", cut5: -5, cut3: -1},
		{name: "EcoRI", recognition: "GAATTC", cut5: -5, cut3: -1},
		{name: "HindIII", recognition: "AAGCTT", cut5: -5, cut3: -1},
		{name: "NcoI", recognition: "CCATGG", cut5: -5, cut3: -1},
		{name: "XhoI", recognition: "CTCGAG", cut5: -5, cut3: -1},
		{name: "SpeI", recognition: "ACTAGT", cut5: -5, cut3: -1},
		{name: "XbaI", recognition: "TCTAGA", cut5: -5, cut3: -1},
		{name: "NdeI", recognition: "CATATG", cut5: -4, cut3: -2},
		{name: "NotI", recognition: "GCGGCCGC", cut5: -6, cut3: -2},
		{name: "AscI", recognition: "GGCGCGCC", cut5: -6, cut3: -2},
		{name: "PstI", recognition: "CTGCAG", cut5: -1, cut3: -5},
		{name: "SphI", recognition: "GCATGC", cut5: -1, cut3: -5},
		{name: "KpnI", recognition: "GGTACC", cut5: -1, cut3: -5},
		{name: "SacI", recognition: "GAGCTC", cut5: -1, cut3: -5},
		{name: "PacI", recognition: "TTAATTAA", cut5: -3, cut3: -5},
		{name: "EcoRV", recognition: "GATATC", cut5: -3, cut3: -3},
		{name: "SmaI", recognition: "CCCGGG", cut5: -3, cut3: -3},
		{name: "PvuII", recognition: "CAGCTG", cut5: -3, cut3: -3},
		{name: "PmeI", recognition: "GTTTAAAC", cut5: -4, cut3: -4},
	}

	registry := make(map[string]enzyme, len(table))
	for _, enz := range table {
		enz.recognitionRC = mustRevComp(enz.recognition)
		enz.isFivePrime = enz.cut5 < enz.cut3
		registry[strings.ToLower(enz.name)] = enz
	}

	return registry
}

// lookupEnzyme finds an enzyme by (case-insensitive) name
func lookupEnzyme(name string) (enzyme, error) {
	enz, ok := enzymes[strings.ToLower(name)]
	if !ok {
		return enzyme{}, fmt.Errorf("%w: %s", ErrUnknownEnzyme, name)
	}

	return enz, nil
}

// isEnzyme is whether a name is in the registry. The assembly dispatcher
// uses this to choose between Golden Gate and homology-overlap assembly
func isEnzyme(name string) bool {
	_, ok := enzymes[strings.ToLower(name)]
	return ok
}

// EnzymeInfo is a registry entry as shown to callers
type EnzymeInfo struct {
	Name        string `json:"name"`
	Recognition string `json:"recognitionSequence"`
	Cut5        int    `json:"cut5"`
	Cut3        int    `json:"cut3"`
	IsFivePrime bool   `json:"isFivePrime"`
}

// Registry lists every registered enzyme, sorted by name
func Registry() []EnzymeInfo {
	entries := make([]EnzymeInfo, 0, len(enzymes))
	for _, enz := range enzymes {
		entries = append(entries, EnzymeInfo{
			Name:        enz.name,
			Recognition: enz.recognition,
			Cut5:        enz.cut5,
			Cut3:        enz.cut3,
			IsFivePrime: enz.isFivePrime,
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	return entries
}
