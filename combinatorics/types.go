package combinatorics

import "errors"

// Sentinel errors returned by this package's entry points.
var (
	// ErrCardinalityOutOfRange indicates a requested subset size k is
	// negative or exceeds the size of the input universe.
	ErrCardinalityOutOfRange = errors.New("combinatorics: cardinality out of range")
)
