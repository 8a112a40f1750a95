package embed

import (
	"fmt"

	"github.com/kestrelgraph/plantas/dcel"
)

// replay undoes stack in reverse order, restoring each removed vertex
// into the embedding.
//
// Phase 1 only ever records the *abstract* neighbor set H of a
// removed vertex (see reductionStep.h) - at removal time there is no
// planar embedding yet to read a cyclic order from. The planar cyclic
// order is instead recovered here, at replay time: because Phase 3
// processes removals in exactly the reverse of their Phase 1 order,
// by the time step i is replayed every vertex in its H is already
// back in the DCEL, and the region step.vertex used to occupy is
// exactly one face (after undoing whatever shortcut chords Phase 1
// added to keep the graph triangulated during the removal). Deleting
// those chords merges the triangles back into that single face, and
// its Next-boundary walk gives H in correct planar cyclic order.
func replay(store *dcel.Store, vmap map[int]dcel.VertexID, stack []reductionStep) error {
	for i := len(stack) - 1; i >= 0; i-- {
		step := stack[i]

		for _, sc := range step.shortcuts {
			a, b := vmap[sc.a], vmap[sc.b]
			d, err := findDartBetween(store, a, b)
			if err != nil {
				return fmt.Errorf("embed: replay vertex %d: %w", step.vertex, err)
			}
			store.RemoveEdge(d)
		}

		want := make(map[dcel.VertexID]struct{}, len(step.h))
		for _, x := range step.h {
			want[vmap[x]] = struct{}{}
		}
		f, err := findFaceWithVertexSet(store, want)
		if err != nil {
			return fmt.Errorf("embed: replay vertex %d: %w", step.vertex, err)
		}

		boundary := store.FaceBoundary(f)
		orderedH := make([]dcel.VertexID, len(boundary))
		for j, d := range boundary {
			orderedH[j] = store.Origin(d)
		}

		v := store.NewVertex("")
		vmap[step.vertex] = v

		var prevDart dcel.DartID
		for j, hv := range orderedH {
			if j == 0 {
				du := store.AttachFirstEdge(boundary[0], v)
				prevDart = store.Twin(du)
				continue
			}
			dNewV, _ := store.AddEdge(v, hv, prevDart, boundary[j])
			prevDart = dNewV
		}
		dcel.CheckInvariants(store)
	}
	return nil
}

// findDartBetween returns a dart with Origin == a and Target == b.
func findDartBetween(store *dcel.Store, a, b dcel.VertexID) (dcel.DartID, error) {
	for _, d := range store.OutgoingDarts(a) {
		if store.Target(d) == b {
			return d, nil
		}
	}
	return dcel.NoDart, fmt.Errorf("embed: no dart between vertices %d and %d", a, b)
}

// findFaceWithVertexSet returns the face whose boundary walk visits
// exactly the vertex set want, no more and no fewer.
func findFaceWithVertexSet(store *dcel.Store, want map[dcel.VertexID]struct{}) (dcel.FaceID, error) {
	for f := 0; f < store.NumFaces(); f++ {
		boundary := store.FaceBoundary(dcel.FaceID(f))
		if len(boundary) != len(want) {
			continue
		}
		match := true
		for _, d := range boundary {
			if _, ok := want[store.Origin(d)]; !ok {
				match = false
				break
			}
		}
		if match {
			return dcel.FaceID(f), nil
		}
	}
	return dcel.NoFace, fmt.Errorf("embed: no face matches the expected vertex set")
}
