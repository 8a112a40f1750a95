package dot

import "errors"

// Sentinel errors returned by Read.
var (
	// ErrDirectedGraph indicates the input declared "digraph", which
	// this module's algorithms (all defined over undirected graphs)
	// cannot consume.
	ErrDirectedGraph = errors.New("dot: directed graphs are not supported")

	// ErrMalformed indicates the input could not be parsed as DOT.
	ErrMalformed = errors.New("dot: malformed input")
)
