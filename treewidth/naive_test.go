package treewidth_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrelgraph/plantas/core"
	"github.com/kestrelgraph/plantas/decomp"
	"github.com/kestrelgraph/plantas/treewidth"
)

func TestNaive_DecomposeChainCoversAllVertices(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	c := g.AddVertex("c")
	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(b, c))

	root, err := treewidth.Naive{}.Decompose(g)
	require.NoError(t, err)
	require.Len(t, root.Bag, 3)

	leaves := 0
	var walk func(n *decomp.NiceNode)
	walk = func(n *decomp.NiceNode) {
		if n.Kind == decomp.NiceLeaf {
			leaves++
			require.Len(t, n.Bag, 1)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	require.Equal(t, 1, leaves)
}

func TestNaive_EmptyGraph(t *testing.T) {
	g := core.NewGraph()
	_, err := treewidth.Naive{}.Decompose(g)
	require.ErrorIs(t, err, treewidth.ErrEmptyGraph)
}
