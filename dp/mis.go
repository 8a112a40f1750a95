package dp

import "github.com/kestrelgraph/plantas/dcel"

// NewMaxIndependentSet returns a Problem computing a maximum
// independent set, grounded on max_independent_set.rs. hasEdge must
// report adjacency in the original (pre-triangulation) graph: the
// triangulation step in decomp.Triangulate adds edges purely to make
// tree-decomposition construction work, and an independent set must
// not be constrained by those synthetic edges.
func NewMaxIndependentSet(hasEdge func(u, v dcel.VertexID) bool) *Problem {
	return &Problem{
		Objective:    Maximize,
		HandleLeaf:   misLeaf,
		HandleJoin:   misJoin,
		HandleForget: misForget,
		HandleIntroduce: func(u *Universe, node, child *Node, tabs Tables, introduced dcel.VertexID) {
			misIntroduce(u, node, child, tabs, introduced, hasEdge)
		},
	}
}

func misLeaf(u *Universe, node *Node, tabs Tables) {
	v := singleVertex(node)
	t := tabs[node]
	t.set(u.Empty(), newLeafEntry(0, nil))
	vv := v
	t.set(u.With(u.Empty(), v), newLeafEntry(1, &vv))
}

func misJoin(u *Universe, node, left, right *Node, tabs Tables) {
	t := tabs[node]
	for _, subset := range u.Powerset(bagVertices(node)) {
		leftVal := tabs[left].get(subset).Val
		rightVal := tabs[right].get(subset).Val
		var val int64
		if leftVal == NegInf || rightVal == NegInf {
			val = NegInf
		} else {
			val = leftVal + rightVal - int64(subset.PopCount())
		}
		t.set(subset, newJoinEntry(val, left, right, subset))
	}
}

func misForget(u *Universe, node, child *Node, tabs Tables, forgotten dcel.VertexID) {
	t := tabs[node]
	for _, subset := range u.Powerset(bagVertices(node)) {
		withoutVal := tabs[child].get(subset).Val
		withSubset := u.With(subset, forgotten)
		withVal := tabs[child].get(withSubset).Val

		if withoutVal >= withVal {
			t.set(subset, newForgetEntry(withoutVal, child, subset))
		} else {
			t.set(subset, newForgetEntry(withVal, child, withSubset))
		}
	}
}

func misIntroduce(u *Universe, node, child *Node, tabs Tables, introduced dcel.VertexID, hasEdge func(a, b dcel.VertexID) bool) {
	t := tabs[node]
	childVerts := bagVertices(child)
	for _, subset := range u.Powerset(childVerts) {
		val := tabs[child].get(subset).Val
		t.set(subset, newIntroEntry(val, child, subset, nil))

		hasConflict := false
		for _, w := range childVerts {
			if u.Has(subset, w) && hasEdge(introduced, w) {
				hasConflict = true
				break
			}
		}

		withVertex := u.With(subset, introduced)
		if hasConflict || val == NegInf {
			t.set(withVertex, newIntroEntry(NegInf, child, subset, nil))
		} else {
			vv := introduced
			t.set(withVertex, newIntroEntry(val+1, child, subset, &vv))
		}
	}
}

func singleVertex(node *Node) dcel.VertexID {
	for v := range node.Bag {
		return v
	}
	invariantf("dp: leaf node has empty bag")
	return 0
}

func bagVertices(node *Node) []dcel.VertexID {
	out := make([]dcel.VertexID, 0, len(node.Bag))
	for v := range node.Bag {
		out = append(out, v)
	}
	return out
}
