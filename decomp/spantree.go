package decomp

import "github.com/kestrelgraph/plantas/dcel"

// SpanningTree is a BFS spanning tree of a DCEL's primal graph,
// recording visit Order and Parent links the way a generic BFS result
// would: a deterministic traversal driven by the embedding's
// rotational order (dcel.Store.OutgoingDarts) rather than an adjacency
// list, since that is the only neighbor enumeration a DCEL exposes
// directly.
type SpanningTree struct {
	Root   dcel.VertexID
	Order  []dcel.VertexID
	Parent map[dcel.VertexID]dcel.VertexID
	// Levels holds BFS layers, 0-indexed: Levels[0] == {Root}.
	Levels [][]dcel.VertexID
}

// IsTreeEdge reports whether (u, v) is an edge of the spanning tree
// (in either direction).
func (t *SpanningTree) IsTreeEdge(u, v dcel.VertexID) bool {
	if p, ok := t.Parent[v]; ok && p == u {
		return true
	}
	if p, ok := t.Parent[u]; ok && p == v {
		return true
	}
	return false
}

// ComputeSpanningTree runs a BFS over s starting from root, using
// OutgoingDarts to enumerate neighbors in rotational order so the
// traversal (and therefore the resulting tree) is reproducible.
func ComputeSpanningTree(s *dcel.Store, root dcel.VertexID) (*SpanningTree, error) {
	if s.NumVertices() == 0 {
		return nil, ErrEmptyGraph
	}

	visited := map[dcel.VertexID]bool{root: true}
	parent := map[dcel.VertexID]dcel.VertexID{}
	order := []dcel.VertexID{root}
	levels := [][]dcel.VertexID{{root}}

	queue := []dcel.VertexID{root}
	for len(queue) > 0 {
		var next []dcel.VertexID
		for _, v := range queue {
			for _, d := range s.OutgoingDarts(v) {
				n := s.Target(d)
				if visited[n] {
					continue
				}
				visited[n] = true
				parent[n] = v
				order = append(order, n)
				next = append(next, n)
			}
		}
		queue = next
		if len(next) > 0 {
			levels = append(levels, next)
		}
	}

	return &SpanningTree{Root: root, Order: order, Parent: parent, Levels: levels}, nil
}

// AncestorChain returns v and every ancestor of v up to (and
// including) the tree root, in that order: exactly the set
// decomp.BuildBags unions into a face's bag for each of its vertices.
func (t *SpanningTree) AncestorChain(v dcel.VertexID) []dcel.VertexID {
	chain := []dcel.VertexID{v}
	for {
		p, ok := t.Parent[v]
		if !ok {
			return chain
		}
		chain = append(chain, p)
		v = p
	}
}
