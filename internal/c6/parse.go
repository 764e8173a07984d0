package c6

import (
	"strconv"
	"strings"
)

// Operation is a Construction File step type
type Operation string

// the simulated (and pass-through) operations
const (
	OpPCR       Operation = "PCR"
	OpAssemble  Operation = "Assemble"
	OpDigest    Operation = "Digest"
	OpLigate    Operation = "Ligate"
	OpTransform Operation = "Transform"
	OpBlunt     Operation = "Blunt"
)

// gibsonMarker is the chemistry token recorded when an assembly step names no
// enzyme. Anything that is not a registered enzyme selects homology-overlap
// assembly, so the exact spelling only matters for round-tripping
const gibsonMarker = "Gibson"

// Step is one row of a Construction File: an operation, its named inputs and
// parameters, and the name its product will be known by
type Step struct {
	// Operation of this step
	Operation Operation `json:"operation"`

	// Output is the name the step's product is stored under
	Output string `json:"output"`

	// Inputs are the named molecules the operation consumes: the template
	// for PCR, the fragments for assembly/ligation, the substrate otherwise
	Inputs []string `json:"inputs,omitempty"`

	// Forward and Reverse are the primer names of a PCR step
	Forward string `json:"forward,omitempty"`
	Reverse string `json:"reverse,omitempty"`

	// Enzyme is the assembly enzyme name, or the chemistry marker for a
	// homology assembly
	Enzyme string `json:"enzyme,omitempty"`

	// Enzymes are the digestion enzymes
	Enzymes []string `json:"enzymes,omitempty"`

	// FragSelect is the digestion fragment index, counted left to right
	FragSelect int `json:"fragSelect,omitempty"`

	// Strain and Antibiotic are carried through unsimulated on a Transform
	Strain     string `json:"strain,omitempty"`
	Antibiotic string `json:"antibiotic,omitempty"`
}

// ConstructionFile is an ordered plan of steps plus the named starting
// molecules they reference
type ConstructionFile struct {
	Steps     []Step                    `json:"steps"`
	Sequences map[string]Polynucleotide `json:"sequences"`
}

// filler words stripped during tokenization
var fillers = map[string]bool{
	"on":   true,
	"with": true,
	"to":   true,
	"and":  true,
	"from": true,
}

// molecule-type keywords that may prefix a sequence declaration
var declKinds = map[string]func(string) (Polynucleotide, error){
	"oligo":   newOligo,
	"primer":  newOligo,
	"plasmid": newPlasmid,
	"dsdna":   newLinearDNA,
	"linear":  newLinearDNA,
}

// Parse tokenizes one or more blocks of tabular or free text into an ordered
// step list and a name to sequence table. The parse is best effort: rows that
// do not start with an operation keyword and are not valid sequence
// declarations (headers, comments) are silently dropped
func Parse(text string) ConstructionFile {
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		if tokens := tokenize(line); len(tokens) > 0 {
			rows = append(rows, tokens)
		}
	}

	return parseRows(rows)
}

// tokenize splits a row on whitespace, commas, parentheses and quotes and
// drops filler words
func tokenize(line string) []string {
	raw := strings.FieldsFunc(line, func(r rune) bool {
		switch r {
		case ' ', '\t', '\r', ',', '(', ')', '"', '\'':
			return true
		}
		return false
	})

	tokens := raw[:0]
	for _, token := range raw {
		if !fillers[strings.ToLower(token)] {
			tokens = append(tokens, token)
		}
	}

	return tokens
}

// parseRows extracts steps and sequence declarations from tokenized rows
func parseRows(rows [][]string) ConstructionFile {
	cf := ConstructionFile{Sequences: map[string]Polynucleotide{}}

	for _, tokens := range rows {
		if step, ok := parseStep(tokens); ok {
			cf.Steps = append(cf.Steps, step)
			continue
		}

		if name, p, ok := parseDeclaration(tokens); ok {
			cf.Sequences[name] = p
		}
	}

	return cf
}

// parseStep recognizes an operation keyword in a row's first token and
// extracts the operation's fixed positional fields
func parseStep(tokens []string) (Step, bool) {
	keyword := strings.ToLower(tokens[0])
	last := len(tokens) - 1

	switch keyword {
	case "pcr":
		if len(tokens) < 5 {
			return Step{}, false
		}
		return Step{
			Operation: OpPCR,
			Forward:   tokens[1],
			Reverse:   tokens[2],
			Inputs:    []string{tokens[3]},
			Output:    tokens[4],
		}, true

	case "assemble", "goldengate":
		// <fragments...> <enzyme> <output>
		if len(tokens) < 4 {
			return Step{}, false
		}
		return Step{
			Operation: OpAssemble,
			Inputs:    tokens[1 : last-1],
			Enzyme:    tokens[last-1],
			Output:    tokens[last],
		}, true

	case "gibson":
		// <fragments...> <output>
		if len(tokens) < 3 {
			return Step{}, false
		}
		return Step{
			Operation: OpAssemble,
			Inputs:    tokens[1:last],
			Enzyme:    gibsonMarker,
			Output:    tokens[last],
		}, true

	case "digest":
		// <substrate> <enzymes...> <fragselect> <output>
		if len(tokens) < 5 {
			return Step{}, false
		}
		fragSelect, err := strconv.Atoi(tokens[last-1])
		if err != nil {
			return Step{}, false
		}
		var names []string
		for _, enzymes := range tokens[2 : last-1] {
			names = append(names, strings.Split(enzymes, ",")...)
		}
		return Step{
			Operation:  OpDigest,
			Inputs:     []string{tokens[1]},
			Enzymes:    names,
			FragSelect: fragSelect,
			Output:     tokens[last],
		}, true

	case "ligate":
		if len(tokens) < 3 {
			return Step{}, false
		}
		return Step{
			Operation: OpLigate,
			Inputs:    tokens[1:last],
			Output:    tokens[last],
		}, true

	case "transform":
		// <substrate> [strain] [antibiotic] <output>
		if len(tokens) < 3 {
			return Step{}, false
		}
		step := Step{
			Operation: OpTransform,
			Inputs:    []string{tokens[1]},
			Output:    tokens[last],
		}
		if len(tokens) > 3 {
			step.Strain = tokens[2]
		}
		if len(tokens) > 4 {
			step.Antibiotic = tokens[3]
		}
		return step, true

	case "blunt":
		if len(tokens) < 3 {
			return Step{}, false
		}
		return Step{
			Operation: OpBlunt,
			Inputs:    []string{tokens[1]},
			Output:    tokens[last],
		}, true
	}

	return Step{}, false
}

// parseDeclaration reads a named-sequence row: an optional molecule-type
// keyword, a name and an alphabet-valid payload
func parseDeclaration(tokens []string) (string, Polynucleotide, bool) {
	build := newLinearDNA
	if kind, ok := declKinds[strings.ToLower(tokens[0])]; ok {
		if len(tokens) < 3 {
			return "", Polynucleotide{}, false
		}
		build = kind
		tokens = tokens[1:]
	}

	if len(tokens) < 2 {
		return "", Polynucleotide{}, false
	}

	p, err := build(tokens[1])
	if err != nil {
		return "", Polynucleotide{}, false
	}

	return tokens[0], p, true
}
