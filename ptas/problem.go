package ptas

import (
	"github.com/kestrelgraph/plantas/dcel"
	"github.com/kestrelgraph/plantas/dp"
)

// Problem names which combinatorial problem Solve should approximate
// and carries the two things that differ between them: how to build a
// dp.Problem given an adjacency check, and whether the PTAS driver's
// step 4 (add back deleted vertices) applies.
type Problem struct {
	Objective          dp.Objective
	NewDpProblem       func(hasEdge func(u, v dcel.VertexID) bool) *dp.Problem
	AddDeletedVertices bool
}

// MaxIndependentSet returns the Problem for Maximum Independent Set.
func MaxIndependentSet() Problem {
	return Problem{
		Objective:          dp.Maximize,
		NewDpProblem:       dp.NewMaxIndependentSet,
		AddDeletedVertices: false,
	}
}

// MinVertexCover returns the Problem for Minimum Vertex Cover. Deleted
// vertices are added back to the solution (spec step 4): each one
// trivially covers every edge it touches, since the deleted vertex
// itself is in the solution, whichever ring the edge's other endpoint
// falls in.
func MinVertexCover() Problem {
	return Problem{
		Objective:          dp.Minimize,
		NewDpProblem:       dp.NewMinVertexCover,
		AddDeletedVertices: true,
	}
}

// better reports whether candidate size a beats candidate size b under
// this problem's objective (bigger is better for MIS, smaller for MVC).
func (p Problem) better(a, b int) bool {
	if p.Objective == dp.Maximize {
		return a > b
	}
	return a < b
}
