package c6

import "fmt"

// Settings are the simulation parameters an Executor runs with. They are
// captured once at construction; nothing is read lazily from global state
type Settings struct {
	// AnnealLength is the primer annealing-anchor length used by PCR
	AnnealLength int

	// HomologyLength is the homology-arm length used by Gibson assembly
	HomologyLength int
}

// DefaultSettings are the parameters of a standard reaction
func DefaultSettings() Settings {
	return Settings{
		AnnealLength:   18,
		HomologyLength: 20,
	}
}

// Product is one named step result
type Product struct {
	// Name is the step's declared output name
	Name string `json:"name"`

	// Sequence of the predicted molecule
	Sequence string `json:"sequence"`

	// IsCircular is whether the predicted molecule is a plasmid
	IsCircular bool `json:"isCircular"`
}

// Execute runs a Construction File's steps strictly in file order and returns
// one product per step.
//
// The working table is seeded from the file's declared sequences; each step's
// output is inserted back, shadowing a same-named declaration for later
// lookups. A reference must resolve to a declared sequence or to the output
// of an earlier step. Any failing step aborts the run without returning the
// products of the steps already completed
func Execute(cf ConstructionFile, settings Settings) ([]Product, error) {
	table := make(map[string]Polynucleotide, len(cf.Sequences)+len(cf.Steps))
	for name, p := range cf.Sequences {
		table[name] = p
	}

	get := func(name string) (Polynucleotide, error) {
		p, ok := table[name]
		if !ok {
			return Polynucleotide{}, fmt.Errorf("%w: %s", ErrMissingSequence, name)
		}
		return p, nil
	}

	getAll := func(names []string) ([]Polynucleotide, error) {
		ps := make([]Polynucleotide, len(names))
		for i, name := range names {
			p, err := get(name)
			if err != nil {
				return nil, err
			}
			ps[i] = p
		}
		return ps, nil
	}

	var products []Product
	for _, step := range cf.Steps {
		result, err := executeStep(step, settings, get, getAll)
		if err != nil {
			return nil, fmt.Errorf("step %s %s: %w", step.Operation, step.Output, err)
		}

		table[step.Output] = result
		products = append(products, Product{
			Name:       step.Output,
			Sequence:   result.Sequence,
			IsCircular: result.IsCircular,
		})
	}

	return products, nil
}

func executeStep(
	step Step,
	settings Settings,
	get func(string) (Polynucleotide, error),
	getAll func([]string) ([]Polynucleotide, error),
) (Polynucleotide, error) {
	if len(step.Inputs) == 0 {
		return Polynucleotide{}, fmt.Errorf("%w: step %s names no inputs", ErrMissingSequence, step.Output)
	}

	switch step.Operation {
	case OpPCR:
		forward, err := get(step.Forward)
		if err != nil {
			return Polynucleotide{}, err
		}
		reverse, err := get(step.Reverse)
		if err != nil {
			return Polynucleotide{}, err
		}
		template, err := get(step.Inputs[0])
		if err != nil {
			return Polynucleotide{}, err
		}
		return pcr(forward.Sequence, reverse.Sequence, template, settings.AnnealLength)

	case OpAssemble:
		inputs, err := getAll(step.Inputs)
		if err != nil {
			return Polynucleotide{}, err
		}
		// a registered enzyme selects Golden Gate; any other marker
		// selects homology-overlap assembly
		if isEnzyme(step.Enzyme) {
			return goldenGate(inputs, step.Enzyme)
		}
		return gibson(inputs, settings.HomologyLength, false)

	case OpDigest:
		input, err := get(step.Inputs[0])
		if err != nil {
			return Polynucleotide{}, err
		}
		return digest(input, step.Enzymes, step.FragSelect)

	case OpLigate:
		inputs, err := getAll(step.Inputs)
		if err != nil {
			return Polynucleotide{}, err
		}
		return ligate(inputs)

	case OpTransform:
		// no chemistry to simulate: the molecule passes through
		return get(step.Inputs[0])

	case OpBlunt:
		input, err := get(step.Inputs[0])
		if err != nil {
			return Polynucleotide{}, err
		}
		return blunt(input), nil
	}

	return Polynucleotide{}, fmt.Errorf("%w: unsupported operation %s", ErrResolution, step.Operation)
}
