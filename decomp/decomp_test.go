package decomp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrelgraph/plantas/core"
	"github.com/kestrelgraph/plantas/decomp"
	"github.com/kestrelgraph/plantas/embed"
)

func buildK4(t *testing.T) (*core.Graph, []core.VertexID) {
	t.Helper()
	g := core.NewGraph()
	ids := make([]core.VertexID, 4)
	for i := range ids {
		ids[i] = g.AddVertex(string(rune('a' + i)))
	}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			require.NoError(t, g.AddEdge(ids[i], ids[j]))
		}
	}
	return g, ids
}

func TestTriangulate_NoOpOnMaximalPlanar(t *testing.T) {
	g, _ := buildK4(t)
	store, _, err := embed.Embed(g)
	require.NoError(t, err)

	added := decomp.Triangulate(store)
	require.Empty(t, added)
	require.NoError(t, store.Validate())
}

func TestSpanningTree_CoversAllVertices(t *testing.T) {
	g, ids := buildK4(t)
	store, vmap, err := embed.Embed(g)
	require.NoError(t, err)

	root := vmap[ids[0]]
	tree, err := decomp.ComputeSpanningTree(store, root)
	require.NoError(t, err)
	require.Len(t, tree.Order, 4)
	require.Equal(t, root, tree.Root)
	require.Equal(t, root, tree.Levels[0][0])
}

func TestDualGraph_ConnectsAcrossTreeEdgesOnly(t *testing.T) {
	g, ids := buildK4(t)
	store, vmap, err := embed.Embed(g)
	require.NoError(t, err)

	root := vmap[ids[0]]
	tree, err := decomp.ComputeSpanningTree(store, root)
	require.NoError(t, err)

	dual := decomp.DualGraph(store, tree)

	edgeCount := 0
	for _, neighbors := range dual {
		edgeCount += len(neighbors)
	}
	edgeCount /= 2

	// A spanning tree over 4 vertices has 3 edges; each contributes at
	// most one dual edge (two tree edges could border the same face
	// pair is impossible here since K4's faces are all distinct
	// triangles), so the dual has at most 3 edges.
	require.LessOrEqual(t, edgeCount, 3)
	require.Greater(t, edgeCount, 0)
}

func TestBuildBags_UnionCoversAllVertices(t *testing.T) {
	g, ids := buildK4(t)
	store, vmap, err := embed.Embed(g)
	require.NoError(t, err)

	root := vmap[ids[0]]
	tree, err := decomp.ComputeSpanningTree(store, root)
	require.NoError(t, err)
	dual := decomp.DualGraph(store, tree)

	raw, err := decomp.BuildBags(store, dual, tree, 0)
	require.NoError(t, err)
	require.NotEmpty(t, raw.Bags)

	seen := map[int]bool{}
	for _, bag := range raw.Bags {
		for v := range bag.Vertices {
			seen[int(v)] = true
		}
	}
	require.Len(t, seen, 4)
}

func TestNiceFrom_ProducesWellShapedTree(t *testing.T) {
	g, ids := buildK4(t)
	store, vmap, err := embed.Embed(g)
	require.NoError(t, err)

	root := vmap[ids[0]]
	tree, err := decomp.ComputeSpanningTree(store, root)
	require.NoError(t, err)
	dual := decomp.DualGraph(store, tree)

	raw, err := decomp.BuildBags(store, dual, tree, 0)
	require.NoError(t, err)

	nice, err := decomp.NiceFrom(raw)
	require.NoError(t, err)
	require.NotNil(t, nice)

	var walk func(n *decomp.NiceNode)
	var leaves, joins int
	walk = func(n *decomp.NiceNode) {
		switch n.Kind {
		case decomp.NiceLeaf:
			leaves++
			require.Len(t, n.Bag, 1)
			require.Empty(t, n.Children)
		case decomp.NiceJoin:
			joins++
			require.Len(t, n.Children, 2)
		case decomp.NiceIntroduce, decomp.NiceForget:
			require.Len(t, n.Children, 1)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(nice)
	require.Greater(t, leaves, 0)
}
