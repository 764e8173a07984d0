package c6

import "errors"

// Simulation errors. Every simulator fails fast with one of these (wrapped
// with context via fmt.Errorf and %w); the executor never catches or retries,
// so a failing step aborts the remainder of the run.
var (
	// ErrInvalidSequence is returned when a raw sequence contains a
	// character outside the IUPAC nucleotide alphabet
	ErrInvalidSequence = errors.New("invalid sequence")

	// ErrResolution is returned when an input is neither a raw sequence
	// nor a structured molecule
	ErrResolution = errors.New("cannot resolve input to a polynucleotide")

	// ErrInvalidCharacter is returned when reverse complementing a
	// sequence with an unknown symbol
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrNoAnneal is returned when a primer's annealing anchor cannot be
	// found in the template (nor its reverse complement)
	ErrNoAnneal = errors.New("primer does not anneal to the template")

	// ErrUnknownEnzyme is returned for an enzyme name missing from the registry
	ErrUnknownEnzyme = errors.New("unknown enzyme")

	// ErrInvalidFragmentIndex is returned when a digestion's fragment-select
	// index is out of range
	ErrInvalidFragmentIndex = errors.New("invalid fragment index")

	// ErrPalindromicEnd is returned when a Golden Gate sticky end is its own
	// reverse complement and so cannot uniquely determine a joining partner
	ErrPalindromicEnd = errors.New("palindromic sticky end")

	// ErrAmbiguousAssembly is returned when fragments can join in more than
	// one way
	ErrAmbiguousAssembly = errors.New("ambiguous assembly")

	// ErrNonClosingAssembly is returned when fragments cannot be joined into
	// a single closed product
	ErrNonClosingAssembly = errors.New("assembly does not close")

	// ErrMissingSequence is returned when a step references a name that is
	// neither declared nor produced by an earlier step
	ErrMissingSequence = errors.New("missing sequence")
)
