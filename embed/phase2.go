package embed

import "github.com/kestrelgraph/plantas/dcel"

// embedK4 builds the unique (up to reflection) planar embedding of 4
// mutually-adjacent vertices: a triangle v0-v1-v2 with v3 folded into
// its center, giving 4 triangular faces. ids gives the 4 surviving
// workGraph vertex IDs; the returned map translates them to the
// dcel.VertexID the builder assigned, in the same 0..3 local order
// used by the face list below (0=v0, 1=v1, 2=v2, 3=v3).
func embedK4(ids []int) (*dcel.Store, map[int]dcel.VertexID, error) {
	if len(ids) != 4 {
		panic("embed: Phase 2 requires exactly 4 vertices")
	}

	faces := [][]int{
		{0, 1, 3},
		{1, 2, 3},
		{2, 0, 3},
		{0, 2, 1}, // outer face, traversed opposite to the inner triangle
	}
	store, err := dcel.BuildFromFaces([]string{"", "", "", ""}, faces)
	if err != nil {
		return nil, nil, err
	}

	m := make(map[int]dcel.VertexID, 4)
	for local, id := range ids {
		m[id] = dcel.VertexID(local)
	}
	return store, m, nil
}
