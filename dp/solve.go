package dp

import (
	"github.com/kestrelgraph/plantas/dcel"
	"github.com/kestrelgraph/plantas/decomp"
)

// Solution is the result of Solve: the achieved objective value and
// the vertices selected to achieve it (the independent set, the
// vertex cover, or whatever VertexUsed means for the given Problem).
type Solution struct {
	Value    int64
	Vertices map[dcel.VertexID]struct{}
}

// Solve runs prob's dynamic program bottom-up over root's nice tree
// decomposition and reconstructs the optimal solution by walking back
// down from the root's best table entry, following each entry's
// Children references exactly as dp_read_solution_from_table_rec
// does.
func Solve(root *Node, prob *Problem) Solution {
	universe := NewUniverse(allVertices(root))
	tabs := Tables{}
	solveRec(universe, root, prob, tabs)

	rootTable := tabs[root]
	var best *TableEntry
	for key := range rootTable {
		e := rootTable[key]
		if best == nil || prob.Objective.better(e.Val, best.Val) {
			entryCopy := e
			best = &entryCopy
		}
	}

	sol := Solution{Vertices: map[dcel.VertexID]struct{}{}}
	if best == nil {
		return sol
	}
	sol.Value = best.Val
	collectSolution(tabs, best, sol.Vertices)
	return sol
}

func collectSolution(tabs Tables, entry *TableEntry, out map[dcel.VertexID]struct{}) {
	if entry.VertexUsed != nil {
		out[*entry.VertexUsed] = struct{}{}
	}
	for _, ref := range entry.Children {
		childTable := tabs[ref.Node]
		childEntry := childTable.get(ref.Subset)
		collectSolution(tabs, &childEntry, out)
	}
}

func solveRec(u *Universe, node *Node, prob *Problem, tabs Tables) {
	for _, c := range node.Children {
		solveRec(u, c, prob, tabs)
	}

	tabs[node] = Table{}

	switch node.Kind {
	case decomp.NiceLeaf:
		prob.HandleLeaf(u, node, tabs)
	case decomp.NiceJoin:
		prob.HandleJoin(u, node, node.Children[0], node.Children[1], tabs)
	case decomp.NiceForget:
		prob.HandleForget(u, node, node.Children[0], tabs, node.Vertex)
	case decomp.NiceIntroduce:
		prob.HandleIntroduce(u, node, node.Children[0], tabs, node.Vertex)
	}
}

func allVertices(node *Node) map[dcel.VertexID]struct{} {
	out := map[dcel.VertexID]struct{}{}
	var walk func(n *Node)
	walk = func(n *Node) {
		for v := range n.Bag {
			out[v] = struct{}{}
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(node)
	return out
}
