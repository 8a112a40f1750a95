package embed_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrelgraph/plantas/core"
	"github.com/kestrelgraph/plantas/embed"
)

func k4() *core.Graph {
	g := core.NewGraph()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	c := g.AddVertex("c")
	d := g.AddVertex("d")
	for _, e := range [][2]core.VertexID{{a, b}, {a, c}, {a, d}, {b, c}, {b, d}, {c, d}} {
		_ = g.AddEdge(e[0], e[1])
	}
	return g
}

func TestEmbed_K4(t *testing.T) {
	g := k4()
	store, vmap, err := embed.Embed(g)
	require.NoError(t, err)
	require.Len(t, vmap, 4)
	require.Equal(t, 4, store.NumVertices())
	require.Equal(t, 4, store.NumFaces())
	require.NoError(t, store.Validate())
}

func TestEmbed_TooFewVertices(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("a")
	g.AddVertex("b")
	_, _, err := embed.Embed(g)
	require.ErrorIs(t, err, embed.ErrTooFewVertices)
}
