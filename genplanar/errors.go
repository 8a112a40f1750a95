package genplanar

import "errors"

// Sentinel errors for genplanar constructors.
var (
	// ErrTooFewVertices indicates a constructor's size parameter is
	// below the minimum its topology requires.
	ErrTooFewVertices = errors.New("genplanar: parameter too small")

	// ErrUnknownSolid indicates PlatonicSolid was asked for a name
	// outside the five canonical solids.
	ErrUnknownSolid = errors.New("genplanar: unknown platonic solid")
)
