package genplanar

import (
	"fmt"
	"math/rand"

	"github.com/kestrelgraph/plantas/core"
	"github.com/kestrelgraph/plantas/dcel"
)

// triFace is a triangular face given as an ordered vertex triple. Its
// orientation must be consistent with the rest of the face list: each
// undirected edge {u,v} appears as u,v in exactly one face and v,u in
// exactly one other, the convention dcel.BuildFromFaces requires.
type triFace [3]int

// RandomMaximalPlanar grows a maximal planar graph on n vertices
// (n >= 4) from K4, deterministically for a given seed. At every step
// it picks a random triangular face and stacks a new vertex inside it,
// connected to the face's three corners, replacing one face with
// three. The result is a full triangulation: every intermediate and
// final graph is maximal planar.
func RandomMaximalPlanar(n int, seed int64) (*core.Graph, error) {
	if n < 4 {
		return nil, ErrTooFewVertices
	}
	rng := rand.New(rand.NewSource(seed))

	// K4's four faces, already mutually consistent: every edge of K4
	// appears once forward and once backward across this list.
	faces := []triFace{
		{0, 1, 2},
		{0, 2, 3},
		{0, 3, 1},
		{1, 3, 2},
	}

	next := 4
	for next < n {
		i := rng.Intn(len(faces))
		f := faces[i]
		v := next
		next++

		faces[i] = triFace{f[0], f[1], v}
		faces = append(faces, triFace{f[1], f[2], v}, triFace{f[2], f[0], v})
	}

	labels := make([]string, n)
	faceList := make([][]int, len(faces))
	for i, f := range faces {
		faceList[i] = []int{f[0], f[1], f[2]}
	}

	store, err := dcel.BuildFromFaces(labels, faceList)
	if err != nil {
		return nil, fmt.Errorf("genplanar: RandomMaximalPlanar: %w", err)
	}
	return storeToGraph(store), nil
}

// storeToGraph flattens a DCEL into a core.Graph, keeping vertex IDs
// and labels aligned and emitting each undirected edge once.
func storeToGraph(s *dcel.Store) *core.Graph {
	n := s.NumVertices()
	g := core.NewGraph(core.WithCapacity(n))
	for i := 0; i < n; i++ {
		g.AddVertex(s.Vertex(dcel.VertexID(i)).Label)
	}
	for v := 0; v < n; v++ {
		for _, d := range s.OutgoingDarts(dcel.VertexID(v)) {
			w := s.Target(d)
			if int(w) > v {
				_ = g.AddEdge(core.VertexID(v), core.VertexID(w))
			}
		}
	}
	return g
}
