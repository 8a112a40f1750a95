package treewidth

import "errors"

// ErrEmptyGraph indicates Decompose was called on a graph with no
// vertices, which has no well-defined tree decomposition.
var ErrEmptyGraph = errors.New("treewidth: graph has no vertices")
