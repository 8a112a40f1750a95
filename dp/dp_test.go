package dp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrelgraph/plantas/core"
	"github.com/kestrelgraph/plantas/dcel"
	"github.com/kestrelgraph/plantas/decomp"
	"github.com/kestrelgraph/plantas/dp"
	"github.com/kestrelgraph/plantas/embed"
)

// buildNiceTD embeds g, builds a spanning tree/dual/raw bags rooted at
// an arbitrary face, and rewrites to nice form, returning the nice
// root plus the dcel->core vertex translation.
func buildNiceTD(t *testing.T, g *core.Graph) (*decomp.NiceNode, map[dcel.VertexID]core.VertexID) {
	t.Helper()
	store, vmap, err := embed.Embed(g)
	require.NoError(t, err)

	reverse := make(map[dcel.VertexID]core.VertexID, len(vmap))
	for cv, dv := range vmap {
		reverse[dv] = cv
	}

	decomp.Triangulate(store)

	var root dcel.VertexID
	for _, dv := range vmap {
		root = dv
		break
	}
	tree, err := decomp.ComputeSpanningTree(store, root)
	require.NoError(t, err)

	dual := decomp.DualGraph(store, tree)
	raw, err := decomp.BuildBags(store, dual, tree, 0)
	require.NoError(t, err)

	nice, err := decomp.NiceFrom(raw)
	require.NoError(t, err)

	return nice, reverse
}

// stackedTriangulation builds a maximal planar graph on n>=4 vertices
// by an Apollonian-network-style stacking: start from K4, then
// repeatedly connect a fresh vertex to the three vertices of some
// existing triangular face, splitting that face into three. Embed
// requires its input already be maximal planar, and a plain cycle or
// grid is not, so this is the smallest n-scalable graph family this
// test can hand it.
func stackedTriangulation(t *testing.T, n int) *core.Graph {
	t.Helper()
	require.GreaterOrEqual(t, n, 4)

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

	type face [3]core.VertexID
	faces := []face{
		{ids[0], ids[1], ids[2]},
		{ids[0], ids[1], ids[3]},
		{ids[0], ids[2], ids[3]},
		{ids[1], ids[2], ids[3]},
	}

	for len(g.Vertices()) < n {
		f := faces[0]
		faces = faces[1:]
		v := g.AddVertex(string(rune('a' + len(g.Vertices()))))
		require.NoError(t, g.AddEdge(v, f[0]))
		require.NoError(t, g.AddEdge(v, f[1]))
		require.NoError(t, g.AddEdge(v, f[2]))
		faces = append(faces, face{v, f[0], f[1]}, face{v, f[1], f[2]}, face{v, f[0], f[2]})
	}
	return g
}

func k4Graph(t *testing.T) *core.Graph {
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
	return g
}

func makeHasEdge(g *core.Graph, reverse map[dcel.VertexID]core.VertexID) func(a, b dcel.VertexID) bool {
	return func(a, b dcel.VertexID) bool {
		return g.HasEdge(reverse[a], reverse[b])
	}
}

func toCoreSet(vs map[dcel.VertexID]struct{}, reverse map[dcel.VertexID]core.VertexID) map[core.VertexID]struct{} {
	out := make(map[core.VertexID]struct{}, len(vs))
	for v := range vs {
		out[reverse[v]] = struct{}{}
	}
	return out
}

func TestSolve_MaxIndependentSet_K4(t *testing.T) {
	g := k4Graph(t)
	nice, reverse := buildNiceTD(t, g)

	prob := dp.NewMaxIndependentSet(makeHasEdge(g, reverse))
	sol := dp.Solve(nice, prob)

	coreSol := toCoreSet(sol.Vertices, reverse)
	require.True(t, dp.IsIndependentSet(g, coreSol))
	require.Len(t, coreSol, 1)
	require.Equal(t, int64(1), sol.Value)
}

func TestSolve_MinVertexCover_K4(t *testing.T) {
	g := k4Graph(t)
	nice, reverse := buildNiceTD(t, g)

	prob := dp.NewMinVertexCover(makeHasEdge(g, reverse))
	sol := dp.Solve(nice, prob)

	coreSol := toCoreSet(sol.Vertices, reverse)
	require.True(t, dp.IsVertexCover(g, coreSol))
	require.Len(t, coreSol, 3)
}

func TestSolve_MatchesBruteForce_StackedTriangulations(t *testing.T) {
	for n := 4; n <= 8; n++ {
		g := stackedTriangulation(t, n)
		nice, reverse := buildNiceTD(t, g)
		hasEdge := makeHasEdge(g, reverse)

		misSol := dp.Solve(nice, dp.NewMaxIndependentSet(hasEdge))
		misCore := toCoreSet(misSol.Vertices, reverse)
		require.True(t, dp.IsIndependentSet(g, misCore))
		bruteMis := dp.BruteForceMaxIndependentSet(g)
		require.Len(t, misCore, len(bruteMis))

		mvcSol := dp.Solve(nice, dp.NewMinVertexCover(hasEdge))
		mvcCore := toCoreSet(mvcSol.Vertices, reverse)
		require.True(t, dp.IsVertexCover(g, mvcCore))
		bruteMvc := dp.BruteForceMinVertexCover(g)
		require.Len(t, mvcCore, len(bruteMvc))
	}
}
