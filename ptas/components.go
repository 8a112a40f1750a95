package ptas

import (
	"github.com/spakin/disjoint"

	"github.com/kestrelgraph/plantas/core"
)

// connectedComponents partitions g's vertices into connected
// components using union-find over every edge, grounded on
// get_component_graphs (which uses petgraph's kosaraju_scc there;
// this module's go.mod wires github.com/spakin/disjoint for the same
// purpose instead, per this module's dependency plan).
func connectedComponents(g *core.Graph) [][]core.VertexID {
	elements := make(map[core.VertexID]*disjoint.Element, g.NumVertices())
	for _, v := range g.Vertices() {
		elements[v] = disjoint.NewElement()
	}
	for _, v := range g.Vertices() {
		for _, w := range g.Neighbors(v) {
			if w <= v {
				continue
			}
			disjoint.Union(elements[v], elements[w])
		}
	}

	groups := make(map[*disjoint.Element][]core.VertexID)
	for _, v := range g.Vertices() {
		root := elements[v].Find()
		groups[root] = append(groups[root], v)
	}

	out := make([][]core.VertexID, 0, len(groups))
	for _, vs := range groups {
		out = append(out, vs)
	}
	return out
}
