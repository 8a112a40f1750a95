package dot

import (
	"fmt"
	"strings"

	"github.com/kestrelgraph/plantas/core"
)

// Write renders g as DOT source: one "graph" block with a standalone
// node statement for every isolated vertex and one edge statement per
// edge, each vertex labeled by its core.Graph label if it has one, or
// its VertexID otherwise.
func Write(g *core.Graph) string {
	var b strings.Builder
	b.WriteString("graph g {\n")

	for _, v := range g.Vertices() {
		if g.Degree(v) == 0 {
			fmt.Fprintf(&b, "  %s;\n", vertexName(g, v))
		}
	}

	for _, v := range g.Vertices() {
		for _, w := range g.Neighbors(v) {
			if w <= v {
				continue
			}
			fmt.Fprintf(&b, "  %s -- %s;\n", vertexName(g, v), vertexName(g, w))
		}
	}

	b.WriteString("}\n")
	return b.String()
}

func vertexName(g *core.Graph, v core.VertexID) string {
	if label := g.Label(v); label != "" {
		return label
	}
	return fmt.Sprintf("v%d", int(v))
}
