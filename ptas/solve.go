package ptas

import (
	"math"

	"github.com/kestrelgraph/plantas/core"
	"github.com/kestrelgraph/plantas/dcel"
	"github.com/kestrelgraph/plantas/dp"
	"github.com/kestrelgraph/plantas/treewidth"
)

// Solve computes a (1±eps)-approximate solution to prob on g, using
// solver to obtain a tree decomposition of each survivor component.
// Pass treewidth.Naive{} when no sharper solver is available.
func Solve(g *core.Graph, prob Problem, eps float64, solver treewidth.Solver) (map[core.VertexID]struct{}, error) {
	if g.NumVertices() == 0 {
		return nil, ErrEmptyGraph
	}
	if eps <= 0 || eps >= 1 {
		return nil, ErrInvalidEpsilon
	}

	k := int(math.Ceil(1.0 / eps))

	var best map[core.VertexID]struct{}
	for _, rd := range ringDecompositions(g, k) {
		survivorGraph, toSurvivor := g.InducedSubgraph(rd.survivors)
		fromSurvivor := invert(toSurvivor)

		candidate := make(map[core.VertexID]struct{})
		for _, componentVerts := range connectedComponents(survivorGraph) {
			keep := make(map[core.VertexID]bool, len(componentVerts))
			for _, v := range componentVerts {
				keep[v] = true
			}
			componentGraph, toComponent := survivorGraph.InducedSubgraph(keep)
			fromComponent := invert(toComponent)

			sol, err := solveComponent(componentGraph, prob, solver)
			if err != nil {
				return nil, err
			}
			for v := range sol {
				orig := fromSurvivor[fromComponent[v]]
				candidate[orig] = struct{}{}
			}
		}

		if prob.AddDeletedVertices {
			for v := range rd.deleted {
				candidate[v] = struct{}{}
			}
		}

		if best == nil || prob.better(len(candidate), len(best)) {
			best = candidate
		}
	}

	return best, nil
}

func solveComponent(g *core.Graph, prob Problem, solver treewidth.Solver) (map[core.VertexID]struct{}, error) {
	nice, err := solver.Decompose(g)
	if err != nil {
		return nil, err
	}

	hasEdge := func(a, b dcel.VertexID) bool {
		return g.HasEdge(core.VertexID(int(a)), core.VertexID(int(b)))
	}
	dpProb := prob.NewDpProblem(hasEdge)
	sol := dp.Solve(nice, dpProb)

	out := make(map[core.VertexID]struct{}, len(sol.Vertices))
	for v := range sol.Vertices {
		out[core.VertexID(int(v))] = struct{}{}
	}
	return out, nil
}

func invert(m map[core.VertexID]core.VertexID) map[core.VertexID]core.VertexID {
	out := make(map[core.VertexID]core.VertexID, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}
