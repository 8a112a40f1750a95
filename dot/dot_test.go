package dot_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrelgraph/plantas/core"
	"github.com/kestrelgraph/plantas/dot"
)

func TestRead_SimpleGraph(t *testing.T) {
	g, err := dot.Read("graph g { a -- b; b -- c }")
	require.NoError(t, err)
	require.Equal(t, 3, g.NumVertices())
	require.Equal(t, 2, g.NumEdges())
}

func TestRead_ChainedEdges(t *testing.T) {
	g, err := dot.Read("graph { a -- b -- c -- a }")
	require.NoError(t, err)
	require.Equal(t, 3, g.NumVertices())
	require.Equal(t, 3, g.NumEdges())
}

func TestRead_StandaloneNode(t *testing.T) {
	g, err := dot.Read("graph { a; b; a -- b }")
	require.NoError(t, err)
	require.Equal(t, 2, g.NumVertices())
}

func TestRead_RejectsDigraph(t *testing.T) {
	_, err := dot.Read("digraph { a -- b }")
	require.ErrorIs(t, err, dot.ErrDirectedGraph)
}

func TestRead_RejectsMalformed(t *testing.T) {
	_, err := dot.Read("not dot at all {{{")
	require.ErrorIs(t, err, dot.ErrMalformed)
}

func TestWrite_RoundTripsThroughRead(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	require.NoError(t, g.AddEdge(a, b))

	src := dot.Write(g)
	parsed, err := dot.Read(src)
	require.NoError(t, err)
	require.Equal(t, g.NumVertices(), parsed.NumVertices())
	require.Equal(t, g.NumEdges(), parsed.NumEdges())
}
