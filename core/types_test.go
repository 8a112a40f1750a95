package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrelgraph/plantas/core"
)

func TestGraph_AddVertexAndEdge(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	c := g.AddVertex("c")

	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(b, c))

	require.Equal(t, 3, g.NumVertices())
	require.Equal(t, 2, g.NumEdges())
	require.True(t, g.HasEdge(a, b))
	require.True(t, g.HasEdge(b, a))
	require.False(t, g.HasEdge(a, c))
	require.Equal(t, 2, g.Degree(b))
}

func TestGraph_AddEdgeRejections(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex("a")
	b := g.AddVertex("b")

	require.ErrorIs(t, g.AddEdge(a, a), core.ErrSelfLoop)

	require.NoError(t, g.AddEdge(a, b))
	require.ErrorIs(t, g.AddEdge(a, b), core.ErrDuplicateEdge)
	require.ErrorIs(t, g.AddEdge(a, core.VertexID(99)), core.ErrVertexNotFound)
}

func TestGraph_Clone(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	require.NoError(t, g.AddEdge(a, b))

	clone := g.Clone()
	require.Equal(t, g.NumEdges(), clone.NumEdges())
	require.True(t, clone.HasEdge(a, b))

	clone2 := g.Clone()
	c := clone2.AddVertex("c")
	require.Equal(t, 2, g.NumVertices())
	require.Equal(t, 3, clone2.NumVertices())
	_ = c
}
