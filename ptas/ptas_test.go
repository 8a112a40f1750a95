package ptas_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrelgraph/plantas/core"
	"github.com/kestrelgraph/plantas/dp"
	"github.com/kestrelgraph/plantas/ptas"
	"github.com/kestrelgraph/plantas/treewidth"
)

func cycleGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	ids := make([]core.VertexID, n)
	for i := range ids {
		ids[i] = g.AddVertex(string(rune('a' + i)))
	}
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddEdge(ids[i], ids[(i+1)%n]))
	}
	return g
}

func TestSolve_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("a")

	sol, err := ptas.Solve(g, ptas.MaxIndependentSet(), 0.5, treewidth.Naive{})
	require.NoError(t, err)
	require.Len(t, sol, 1)
}

func TestSolve_SingleEdge(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	require.NoError(t, g.AddEdge(a, b))

	sol, err := ptas.Solve(g, ptas.MaxIndependentSet(), 0.5, treewidth.Naive{})
	require.NoError(t, err)
	require.Len(t, sol, 1)
}

func TestSolve_IndependentSetIsValid(t *testing.T) {
	g := cycleGraph(t, 12)

	sol, err := ptas.Solve(g, ptas.MaxIndependentSet(), 0.3, treewidth.Naive{})
	require.NoError(t, err)

	coreSol := sol
	require.True(t, dp.IsIndependentSet(g, coreSol))
	require.NotEmpty(t, coreSol)
}

func TestSolve_VertexCoverIsValid(t *testing.T) {
	g := cycleGraph(t, 12)

	sol, err := ptas.Solve(g, ptas.MinVertexCover(), 0.3, treewidth.Naive{})
	require.NoError(t, err)
	require.True(t, dp.IsVertexCover(g, sol))
}

func TestSolve_RejectsInvalidEpsilon(t *testing.T) {
	g := cycleGraph(t, 4)
	_, err := ptas.Solve(g, ptas.MaxIndependentSet(), 0, treewidth.Naive{})
	require.ErrorIs(t, err, ptas.ErrInvalidEpsilon)

	_, err = ptas.Solve(g, ptas.MaxIndependentSet(), 1, treewidth.Naive{})
	require.ErrorIs(t, err, ptas.ErrInvalidEpsilon)
}

func TestSolve_RejectsEmptyGraph(t *testing.T) {
	g := core.NewGraph()
	_, err := ptas.Solve(g, ptas.MaxIndependentSet(), 0.5, treewidth.Naive{})
	require.ErrorIs(t, err, ptas.ErrEmptyGraph)
}

func TestSolve_ApproximationRatio(t *testing.T) {
	g := cycleGraph(t, 14)
	eps := 0.3

	sol, err := ptas.Solve(g, ptas.MaxIndependentSet(), eps, treewidth.Naive{})
	require.NoError(t, err)

	brute := dp.BruteForceMaxIndependentSet(g)
	require.GreaterOrEqual(t, float64(len(sol)), (1-eps)*float64(len(brute)))
}
