package embed

import "sort"

// shortcut records one chord edge Phase 1 had to add among a removed
// vertex's neighbors so the remaining graph stays maximal planar
// (triangulated) after the removal. Degree-3 removals need none,
// degree-4 removals need one, degree-5 removals need two.
type shortcut struct {
	a, b int
}

// reductionStep is one entry of the reduction stack: everything Phase
// 3 needs to undo a single vertex removal. H is the removed vertex's
// neighbor set at the time of removal, in ascending VertexID order -
// not yet in planar cyclic order; phase3.go recovers the cyclic order
// from the DCEL at replay time (see replay's doc comment in phase3.go).
//
// This groups the original algorithm's three separate stack item
// kinds (Node/Edge/Degree) into one record per vertex, which is
// simpler in Go and carries exactly the same information: the degree
// determines how many shortcut chords were pushed, and H is
// reconstructible from the Node entry's recorded neighbor set either
// way.
type reductionStep struct {
	vertex    int
	degree    int
	h         []int
	shortcuts []shortcut
}

// reduce repeatedly removes a reducible vertex from wg until exactly
// 4 vertices remain, returning the reduction stack in removal order
// (first removed first). Returns ErrNotReducible if no vertex is
// reducible before reaching that point.
func reduce(wg *workGraph) ([]reductionStep, error) {
	var stack []reductionStep

	reducible := make(map[int]struct{})
	for v := range wg.adj {
		if wg.isReducible(v) {
			reducible[v] = struct{}{}
		}
	}

	for wg.numVertices() > 4 {
		v, ok := pickLowest(reducible)
		if !ok {
			return nil, ErrNotReducible
		}
		delete(reducible, v)

		degree := wg.degree(v)
		h := wg.neighbors(v)
		sort.Ints(h)

		wg.removeVertex(v)

		step := reductionStep{vertex: v, degree: degree, h: h}
		step.shortcuts = addShortcuts(wg, h, degree)

		stack = append(stack, step)

		updateReducibleSet(wg, reducible, h)
	}

	return stack, nil
}

// addShortcuts adds the chord(s) a degree-4 or degree-5 removal needs
// to keep the remaining graph triangulated, picking, for the degree-4
// case, a neighbor w with exactly two neighbors in h (so w,x splits
// the resulting quadrilateral into two triangles), and for the
// degree-5 case a neighbor w with exactly two neighbors in h as well,
// chording it to the two h-members it is not already adjacent to.
func addShortcuts(wg *workGraph, h []int, degree int) []shortcut {
	if degree != 4 && degree != 5 {
		return nil
	}
	hSet := make(map[int]struct{}, len(h))
	for _, x := range h {
		hSet[x] = struct{}{}
	}

	var w int
	found := false
	for _, cand := range h {
		count := 0
		for n := range wg.adj[cand] {
			if _, in := hSet[n]; in {
				count++
			}
		}
		if count == 2 {
			w = cand
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	var rest []int
	for _, x := range h {
		if x == w {
			continue
		}
		if _, adjacent := wg.adj[w][x]; adjacent {
			continue
		}
		rest = append(rest, x)
	}
	sort.Ints(rest)

	var shortcuts []shortcut
	switch degree {
	case 4:
		if len(rest) >= 1 {
			wg.addEdge(w, rest[0])
			shortcuts = append(shortcuts, shortcut{w, rest[0]})
		}
	case 5:
		for i := 0; i < 2 && i < len(rest); i++ {
			wg.addEdge(w, rest[i])
			shortcuts = append(shortcuts, shortcut{w, rest[i]})
		}
	}
	return shortcuts
}

// updateReducibleSet re-evaluates the reducibility of h (whose degree
// just changed) and of their neighbors with degree <= 5 (the only
// vertices whose reducibility the predicate depends on), mirroring
// the original algorithm's local update step.
func updateReducibleSet(wg *workGraph, reducible map[int]struct{}, h []int) {
	refresh := func(v int) {
		if wg.isReducible(v) {
			reducible[v] = struct{}{}
		} else {
			delete(reducible, v)
		}
	}
	for _, x := range h {
		if _, stillPresent := wg.adj[x]; !stillPresent {
			continue
		}
		refresh(x)
		for _, n := range wg.neighbors(x) {
			if wg.degree(n) <= 5 {
				refresh(n)
			}
		}
	}
}

// pickLowest returns the smallest key in a non-empty set, for
// deterministic (reproducible across runs) reduction order.
func pickLowest(set map[int]struct{}) (int, bool) {
	best, ok := 0, false
	for v := range set {
		if !ok || v < best {
			best, ok = v, true
		}
	}
	return best, ok
}
