package dot

import (
	"fmt"

	"github.com/kestrelgraph/plantas/core"
)

// Read parses src as DOT source and builds a core.Graph from its node
// and edge statements. A vertex mentioned only inside an edge
// statement is created implicitly, the way GraphViz itself treats DOT.
func Read(src string) (*core.Graph, error) {
	var file astFile
	if err := dotParser.ParseString(src, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if file.Keyword == "digraph" {
		return nil, ErrDirectedGraph
	}

	g := core.NewGraph()
	ids := make(map[string]core.VertexID)

	getOrCreate := func(label string) core.VertexID {
		if id, ok := ids[label]; ok {
			return id
		}
		id := g.AddVertex(label)
		ids[label] = id
		return id
	}

	for _, stmt := range file.Stmts {
		prev := getOrCreate(stmt.ID)
		for _, hop := range stmt.Hops {
			next := getOrCreate(hop)
			if prev != next && !g.HasEdge(prev, next) {
				if err := g.AddEdge(prev, next); err != nil {
					return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
				}
			}
			prev = next
		}
	}

	return g, nil
}
