package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrelgraph/plantas/core"
)

func TestGraph_InducedSubgraph(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	c := g.AddVertex("c")
	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(b, c))
	require.NoError(t, g.AddEdge(a, c))

	sub, toNew := g.InducedSubgraph(map[core.VertexID]bool{a: true, b: true})
	require.Equal(t, 2, sub.NumVertices())
	require.Equal(t, 1, sub.NumEdges())
	require.True(t, sub.HasEdge(toNew[a], toNew[b]))
}

func TestGraph_InducedSubgraph_Empty(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex("a")
	g.AddVertex("b")

	sub, toNew := g.InducedSubgraph(map[core.VertexID]bool{a: true})
	require.Equal(t, 1, sub.NumVertices())
	require.Equal(t, 0, sub.NumEdges())
	require.Contains(t, toNew, a)
}
