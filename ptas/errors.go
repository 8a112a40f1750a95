package ptas

import "errors"

// Sentinel errors returned by this package's operations.
var (
	// ErrEmptyGraph indicates Solve was called on a graph with no vertices.
	ErrEmptyGraph = errors.New("ptas: graph has no vertices")

	// ErrInvalidEpsilon indicates eps was outside the open interval (0, 1).
	ErrInvalidEpsilon = errors.New("ptas: epsilon must satisfy 0 < eps < 1")
)
