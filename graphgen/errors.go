package graphgen

import "errors"

// Sentinel errors, mirroring the builder package's validation classes:
// callers branch with errors.Is, never string comparison.
var (
	// ErrTooFewVertices indicates n (or a derived parameter such as
	// degree) fell below the minimum a generator requires.
	ErrTooFewVertices = errors.New("graphgen: parameter too small")

	// ErrInvalidProbability indicates p was outside the closed interval
	// [0,1] for RandomSparse.
	ErrInvalidProbability = errors.New("graphgen: probability out of range")

	// ErrConstructFailed indicates RandomRegular exhausted its bounded
	// stub-matching retries without finding a valid simple pairing.
	ErrConstructFailed = errors.New("graphgen: construction failed")
)
