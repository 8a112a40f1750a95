package dp

import (
	"github.com/kestrelgraph/plantas/dcel"
	"github.com/kestrelgraph/plantas/decomp"
)

// Node is the tree-decomposition node type this package operates on.
type Node = decomp.NiceNode

// Infeasible/unbounded sentinels, standing in for the reference
// implementation's i32::MIN (maximization) and i32::MAX
// (minimization): a subset that cannot be completed into a valid
// solution carries one of these as its Val.
const (
	NegInf = int64(-1) << 40
	PosInf = int64(1) << 40
)

// ChildRef points at one child node's table entry for a specific
// subset, the pieces dp_read_solution_from_table_rec needs to walk
// back down from the root's best entry to a full solution.
type ChildRef struct {
	Node   *Node
	Subset Bitset
}

// TableEntry is one row of a bag's DP table: the optimal value
// achievable for a fixed subset of the bag, plus enough bookkeeping
// (Children, VertexUsed) to reconstruct which vertices that value
// corresponds to.
type TableEntry struct {
	Val        int64
	Children   []ChildRef
	VertexUsed *dcel.VertexID
}

func newLeafEntry(val int64, vertexUsed *dcel.VertexID) TableEntry {
	return TableEntry{Val: val, VertexUsed: vertexUsed}
}

func newForgetEntry(val int64, child *Node, childSubset Bitset) TableEntry {
	return TableEntry{Val: val, Children: []ChildRef{{Node: child, Subset: childSubset}}}
}

func newIntroEntry(val int64, child *Node, childSubset Bitset, vertexUsed *dcel.VertexID) TableEntry {
	return TableEntry{Val: val, Children: []ChildRef{{Node: child, Subset: childSubset}}, VertexUsed: vertexUsed}
}

func newJoinEntry(val int64, left, right *Node, subset Bitset) TableEntry {
	return TableEntry{Val: val, Children: []ChildRef{{Node: left, Subset: subset}, {Node: right, Subset: subset}}}
}

// Table maps a bag's subsets (by Bitset.Key) to their table entries.
type Table map[string]TableEntry

func (t Table) get(b Bitset) TableEntry {
	e, ok := t[b.Key()]
	if !ok {
		invariantf("dp: %v", ErrMissingTableEntry)
	}
	return e
}

func (t Table) set(b Bitset, e TableEntry) {
	t[b.Key()] = e
}
