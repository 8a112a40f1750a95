package embed

import "errors"

// Sentinel errors returned by Embed.
var (
	// ErrTooFewVertices indicates the input graph has fewer than 4
	// vertices, below which there is no K4 base to reduce to.
	ErrTooFewVertices = errors.New("embed: graph must have at least 4 vertices")

	// ErrNotReducible indicates the reduction stalled above 4 vertices
	// because no remaining vertex satisfies the reducibility
	// predicate - the input is not a maximal planar graph.
	ErrNotReducible = errors.New("embed: graph could not be reduced to K4; input is not maximal planar")
)
