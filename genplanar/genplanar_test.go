package genplanar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrelgraph/plantas/embed"
	"github.com/kestrelgraph/plantas/genplanar"
)

func TestK4(t *testing.T) {
	g := genplanar.K4()
	require.Equal(t, 4, g.NumVertices())
	require.Equal(t, 6, g.NumEdges())
}

func TestCycle(t *testing.T) {
	g, err := genplanar.Cycle(6)
	require.NoError(t, err)
	require.Equal(t, 6, g.NumVertices())
	require.Equal(t, 6, g.NumEdges())

	_, err = genplanar.Cycle(2)
	require.ErrorIs(t, err, genplanar.ErrTooFewVertices)
}

func TestWheel(t *testing.T) {
	g, err := genplanar.Wheel(6)
	require.NoError(t, err)
	require.Equal(t, 6, g.NumVertices())
	require.Equal(t, 10, g.NumEdges())

	_, err = genplanar.Wheel(3)
	require.ErrorIs(t, err, genplanar.ErrTooFewVertices)
}

func TestGrid(t *testing.T) {
	g, err := genplanar.Grid(3, 4)
	require.NoError(t, err)
	require.Equal(t, 12, g.NumVertices())
	require.Equal(t, 3*3+2*4, g.NumEdges())

	_, err = genplanar.Grid(0, 4)
	require.ErrorIs(t, err, genplanar.ErrTooFewVertices)
}

func TestPlatonicSolid(t *testing.T) {
	cases := []struct {
		name     genplanar.PlatonicName
		vertices int
		edges    int
	}{
		{genplanar.Tetrahedron, 4, 6},
		{genplanar.Cube, 8, 12},
		{genplanar.Octahedron, 6, 12},
		{genplanar.Dodecahedron, 20, 30},
		{genplanar.Icosahedron, 12, 30},
	}
	for _, c := range cases {
		g, err := genplanar.PlatonicSolid(c.name)
		require.NoError(t, err)
		require.Equal(t, c.vertices, g.NumVertices())
		require.Equal(t, c.edges, g.NumEdges())
	}

	_, err := genplanar.PlatonicSolid(genplanar.PlatonicName(99))
	require.ErrorIs(t, err, genplanar.ErrUnknownSolid)
}

func TestRandomMaximalPlanar_VertexAndEdgeCounts(t *testing.T) {
	for _, n := range []int{4, 5, 10, 25} {
		g, err := genplanar.RandomMaximalPlanar(n, 7)
		require.NoError(t, err)
		require.Equal(t, n, g.NumVertices())
		// Every maximal planar graph on n>=3 vertices has exactly 3n-6 edges.
		require.Equal(t, 3*n-6, g.NumEdges())
	}
}

func TestRandomMaximalPlanar_Deterministic(t *testing.T) {
	a, err := genplanar.RandomMaximalPlanar(30, 42)
	require.NoError(t, err)
	b, err := genplanar.RandomMaximalPlanar(30, 42)
	require.NoError(t, err)
	require.Equal(t, a.NumEdges(), b.NumEdges())
	for _, v := range a.Vertices() {
		require.ElementsMatch(t, a.Neighbors(v), b.Neighbors(v))
	}
}

func TestRandomMaximalPlanar_Embeds(t *testing.T) {
	g, err := genplanar.RandomMaximalPlanar(12, 3)
	require.NoError(t, err)
	store, _, err := embed.Embed(g)
	require.NoError(t, err)
	require.NoError(t, store.Validate())
}

func TestRandomMaximalPlanar_RejectsTooSmall(t *testing.T) {
	_, err := genplanar.RandomMaximalPlanar(3, 0)
	require.ErrorIs(t, err, genplanar.ErrTooFewVertices)
}
