package treewidth

import (
	"github.com/kestrelgraph/plantas/core"
	"github.com/kestrelgraph/plantas/dcel"
	"github.com/kestrelgraph/plantas/decomp"
)

// Naive is the in-module fallback Solver: a single Introduce chain
// running from a singleton Leaf up through every vertex of g, one at
// a time, ending at a root bag holding the whole vertex set. It never
// fails to produce a valid nice tree decomposition; it just produces
// one of maximal width.
type Naive struct{}

// Decompose implements Solver.
func (Naive) Decompose(g *core.Graph) (*decomp.NiceNode, error) {
	verts := g.Vertices()
	if len(verts) == 0 {
		return nil, ErrEmptyGraph
	}

	first := dcel.VertexID(int(verts[0]))
	bag := map[dcel.VertexID]struct{}{first: {}}
	node := &decomp.NiceNode{Kind: decomp.NiceLeaf, Bag: bag}

	for _, v := range verts[1:] {
		dv := dcel.VertexID(int(v))
		nextBag := make(map[dcel.VertexID]struct{}, len(bag)+1)
		for w := range bag {
			nextBag[w] = struct{}{}
		}
		nextBag[dv] = struct{}{}
		node = &decomp.NiceNode{Kind: decomp.NiceIntroduce, Vertex: dv, Bag: nextBag, Children: []*decomp.NiceNode{node}}
		bag = nextBag
	}

	return node, nil
}
