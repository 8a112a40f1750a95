package dp

import "github.com/kestrelgraph/plantas/dcel"

// Objective distinguishes maximization problems (independent set)
// from minimization problems (vertex cover): the solve driver needs
// it to pick the best root entry. infeasible() names the matching
// sentinel; the handlers in mis.go and vertexcover.go write NegInf and
// PosInf directly.
type Objective int

const (
	Maximize Objective = iota
	Minimize
)

func (o Objective) infeasible() int64 {
	if o == Maximize {
		return NegInf
	}
	return PosInf
}

func (o Objective) better(a, b int64) bool {
	if o == Maximize {
		return a > b
	}
	return a < b
}

// Problem bundles an Objective with the four handlers that compute a
// node's DP table from its children's: one recipe per nice-TD node
// kind, exactly the reference implementation's DpProblem.
type Problem struct {
	Objective       Objective
	HandleLeaf      func(u *Universe, node *Node, tabs Tables)
	HandleJoin      func(u *Universe, node, left, right *Node, tabs Tables)
	HandleForget    func(u *Universe, node, child *Node, tabs Tables, forgotten dcel.VertexID)
	HandleIntroduce func(u *Universe, node, child *Node, tabs Tables, introduced dcel.VertexID)
}

// Tables holds every bag's DP table, keyed by node identity.
type Tables map[*Node]Table
