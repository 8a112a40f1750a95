package treewidth

import (
	"github.com/kestrelgraph/plantas/core"
	"github.com/kestrelgraph/plantas/decomp"
)

// Solver computes a nice tree decomposition of g. Implementations are
// free to choose vertex IDs in the returned tree however they like,
// as long as every core.VertexID of g appears, cast to its own
// dcel.VertexID equivalent via dcel.VertexID(int(v)) - the convention
// this package's own Naive implementation and dp's callers share, so
// no separate ID-translation map needs to round-trip through Solve.
type Solver interface {
	Decompose(g *core.Graph) (*decomp.NiceNode, error)
}
