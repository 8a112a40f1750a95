package core

// InducedSubgraph returns a fresh, densely-reindexed Graph containing
// exactly the given vertices and every edge of g with both endpoints
// in that set, plus the mapping from g's VertexIDs to the new graph's
// VertexIDs. This is how ptas turns a ring decomposition's survivor
// set, or one connected component of it, into a standalone Graph that
// downstream packages can treat as if it were the whole input.
func (g *Graph) InducedSubgraph(keep map[VertexID]bool) (*Graph, map[VertexID]VertexID) {
	out := NewGraph(WithCapacity(len(keep)))
	toNew := make(map[VertexID]VertexID, len(keep))

	for _, v := range g.Vertices() {
		if !keep[v] {
			continue
		}
		toNew[v] = out.AddVertex(g.Label(v))
	}

	for _, v := range g.Vertices() {
		if !keep[v] {
			continue
		}
		for _, w := range g.Neighbors(v) {
			if !keep[w] || w <= v {
				continue
			}
			_ = out.AddEdge(toNew[v], toNew[w])
		}
	}

	return out, toNew
}
