package genplanar

import (
	"fmt"

	"github.com/kestrelgraph/plantas/core"
)

// K4 builds the complete graph on 4 vertices, the smallest maximal
// planar graph and the base case of RandomMaximalPlanar.
func K4() *core.Graph {
	g := core.NewGraph(core.WithCapacity(4))
	for i := 0; i < 4; i++ {
		g.AddVertex("")
	}
	for u := core.VertexID(0); u < 4; u++ {
		for v := u + 1; v < 4; v++ {
			_ = g.AddEdge(u, v)
		}
	}
	return g
}

// Cycle builds the simple cycle C_n (n >= 3).
func Cycle(n int) (*core.Graph, error) {
	if n < 3 {
		return nil, ErrTooFewVertices
	}
	g := core.NewGraph(core.WithCapacity(n))
	for i := 0; i < n; i++ {
		g.AddVertex("")
	}
	for i := 0; i < n; i++ {
		if err := g.AddEdge(core.VertexID(i), core.VertexID((i+1)%n)); err != nil {
			return nil, fmt.Errorf("genplanar: Cycle: %w", err)
		}
	}
	return g, nil
}

// Wheel builds the wheel graph W_n: a central hub (vertex n-1)
// connected to every vertex of an (n-1)-cycle (n >= 4).
func Wheel(n int) (*core.Graph, error) {
	if n < 4 {
		return nil, ErrTooFewVertices
	}
	g, err := Cycle(n - 1)
	if err != nil {
		return nil, fmt.Errorf("genplanar: Wheel: %w", err)
	}
	hub := g.AddVertex("")
	for v := core.VertexID(0); int(v) < n-1; v++ {
		if err := g.AddEdge(hub, v); err != nil {
			return nil, fmt.Errorf("genplanar: Wheel: %w", err)
		}
	}
	return g, nil
}

// Grid builds a rows x cols orthogonal grid with 4-neighborhood
// adjacency, vertex (r,c) at index r*cols+c (rows, cols >= 1).
func Grid(rows, cols int) (*core.Graph, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrTooFewVertices
	}
	g := core.NewGraph(core.WithCapacity(rows * cols))
	id := func(r, c int) core.VertexID { return core.VertexID(r*cols + c) }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.AddVertex(fmt.Sprintf("%d,%d", r, c))
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				if err := g.AddEdge(id(r, c), id(r, c+1)); err != nil {
					return nil, fmt.Errorf("genplanar: Grid: %w", err)
				}
			}
			if r+1 < rows {
				if err := g.AddEdge(id(r, c), id(r+1, c)); err != nil {
					return nil, fmt.Errorf("genplanar: Grid: %w", err)
				}
			}
		}
	}
	return g, nil
}

// PlatonicName identifies one of the five Platonic solids.
type PlatonicName int

const (
	Tetrahedron PlatonicName = iota
	Cube
	Octahedron
	Dodecahedron
	Icosahedron
)

type chord struct{ U, V int }

var platonicVertexCounts = map[PlatonicName]int{
	Tetrahedron:  4,
	Cube:         8,
	Octahedron:   6,
	Dodecahedron: 20,
	Icosahedron:  12,
}

// platonicEdgeSets holds the canonical shell edges for each solid,
// adapted from the teacher's builder.platonicEdgeSets dataset.
var platonicEdgeSets = map[PlatonicName][]chord{
	Tetrahedron: {
		{0, 1}, {0, 2}, {0, 3},
		{1, 2}, {1, 3},
		{2, 3},
	},
	Cube: {
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
		{4, 5}, {4, 7}, {5, 6}, {6, 7},
	},
	Octahedron: {
		{0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 3}, {1, 4}, {1, 5},
		{2, 4}, {2, 5}, {3, 4}, {3, 5},
	},
	Dodecahedron: {
		{0, 1}, {0, 4}, {1, 2}, {2, 3}, {3, 4},
		{5, 6}, {5, 9}, {6, 7}, {7, 8}, {8, 9},
		{10, 11}, {10, 19}, {11, 12}, {12, 13}, {13, 14},
		{14, 15}, {15, 16}, {16, 17}, {17, 18}, {18, 19},
		{0, 10}, {1, 12}, {2, 14}, {3, 16}, {4, 18},
		{5, 11}, {6, 13}, {7, 15}, {8, 17}, {9, 19},
	},
	Icosahedron: {
		{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 5}, {2, 3}, {3, 4}, {4, 5},
		{1, 6}, {1, 7}, {2, 7}, {2, 8}, {3, 8},
		{3, 9}, {4, 9}, {4, 10}, {5, 6}, {5, 10},
		{6, 7}, {6, 10}, {7, 8}, {8, 9}, {9, 10},
		{6, 11}, {7, 11}, {8, 11}, {9, 11}, {10, 11},
	},
}

// PlatonicSolid builds the shell graph of the named Platonic solid.
func PlatonicSolid(name PlatonicName) (*core.Graph, error) {
	n, ok := platonicVertexCounts[name]
	if !ok {
		return nil, ErrUnknownSolid
	}
	edges := platonicEdgeSets[name]

	g := core.NewGraph(core.WithCapacity(n))
	for i := 0; i < n; i++ {
		g.AddVertex("")
	}
	for _, ch := range edges {
		if err := g.AddEdge(core.VertexID(ch.U), core.VertexID(ch.V)); err != nil {
			return nil, fmt.Errorf("genplanar: PlatonicSolid(%d): %w", name, err)
		}
	}
	return g, nil
}
