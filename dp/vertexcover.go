package dp

import "github.com/kestrelgraph/plantas/dcel"

// NewMinVertexCover returns a Problem computing a minimum vertex
// cover, grounded on min_vertex_cover.rs. hasEdge must report
// adjacency in the original (pre-triangulation) graph, for the same
// reason NewMaxIndependentSet's hasEdge must.
func NewMinVertexCover(hasEdge func(u, v dcel.VertexID) bool) *Problem {
	return &Problem{
		Objective:    Minimize,
		HandleLeaf:   mvcLeaf,
		HandleJoin:   mvcJoin,
		HandleForget: mvcForget,
		HandleIntroduce: func(u *Universe, node, child *Node, tabs Tables, introduced dcel.VertexID) {
			mvcIntroduce(u, node, child, tabs, introduced, hasEdge)
		},
	}
}

func mvcLeaf(u *Universe, node *Node, tabs Tables) {
	v := singleVertex(node)
	t := tabs[node]
	t.set(u.Empty(), newLeafEntry(0, nil))
	vv := v
	t.set(u.With(u.Empty(), v), newLeafEntry(1, &vv))
}

func mvcJoin(u *Universe, node, left, right *Node, tabs Tables) {
	t := tabs[node]
	for _, subset := range u.Powerset(bagVertices(node)) {
		leftVal := tabs[left].get(subset).Val
		rightVal := tabs[right].get(subset).Val
		var val int64
		if leftVal == PosInf || rightVal == PosInf {
			val = PosInf
		} else {
			val = leftVal + rightVal - int64(subset.PopCount())
		}
		t.set(subset, newJoinEntry(val, left, right, subset))
	}
}

func mvcForget(u *Universe, node, child *Node, tabs Tables, forgotten dcel.VertexID) {
	t := tabs[node]
	for _, subset := range u.Powerset(bagVertices(node)) {
		withoutVal := tabs[child].get(subset).Val
		withSubset := u.With(subset, forgotten)
		withVal := tabs[child].get(withSubset).Val

		if withoutVal <= withVal {
			t.set(subset, newForgetEntry(withoutVal, child, subset))
		} else {
			t.set(subset, newForgetEntry(withVal, child, withSubset))
		}
	}
}

// mvcIntroduce requires that every neighbor of introduced already
// present in the child's bag be in the subset - otherwise that edge
// is left uncovered and the subset is infeasible (PosInf) - then
// offers both the not-selected cost (uncovered-neighbor check as
// above) and the selected cost (child's value at the same subset,
// plus one).
func mvcIntroduce(u *Universe, node, child *Node, tabs Tables, introduced dcel.VertexID, hasEdge func(a, b dcel.VertexID) bool) {
	t := tabs[node]
	childVerts := bagVertices(child)
	for _, subset := range u.Powerset(childVerts) {
		covered := true
		for _, w := range childVerts {
			if hasEdge(introduced, w) && !u.Has(subset, w) {
				covered = false
				break
			}
		}

		var val int64
		if covered {
			val = tabs[child].get(subset).Val
		} else {
			val = PosInf
		}
		t.set(subset, newIntroEntry(val, child, subset, nil))

		childVal := tabs[child].get(subset).Val
		selectedVal := childVal
		if childVal != PosInf {
			selectedVal = childVal + 1
		}
		vv := introduced
		t.set(u.With(subset, introduced), newIntroEntry(selectedVal, child, subset, &vv))
	}
}
