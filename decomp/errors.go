package decomp

import "errors"

// Sentinel errors returned by this package's operations.
var (
	// ErrNoRoot indicates BuildBags was asked to start from a face
	// that does not exist in the Store.
	ErrNoRoot = errors.New("decomp: root face out of range")

	// ErrEmptyGraph indicates ComputeSpanningTree was asked to span a
	// Store with no vertices, or NiceFrom was given a RawTD with no bags.
	ErrEmptyGraph = errors.New("decomp: graph has no vertices")

	// ErrNotNiceTD indicates NiceFrom produced a tree that fails its
	// own post-condition checks - always this package's bug, since
	// the rewriting steps are supposed to guarantee the nice-TD shape
	// by construction.
	ErrNotNiceTD = errors.New("decomp: rewritten tree decomposition is not nice")
)
