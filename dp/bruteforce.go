package dp

import "github.com/kestrelgraph/plantas/core"

// IsIndependentSet reports whether sol is pairwise non-adjacent in g.
func IsIndependentSet(g *core.Graph, sol map[core.VertexID]struct{}) bool {
	vs := make([]core.VertexID, 0, len(sol))
	for v := range sol {
		vs = append(vs, v)
	}
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			if g.HasEdge(vs[i], vs[j]) {
				return false
			}
		}
	}
	return true
}

// IsVertexCover reports whether every edge of g has at least one
// endpoint in sol.
func IsVertexCover(g *core.Graph, sol map[core.VertexID]struct{}) bool {
	for _, u := range g.Vertices() {
		for _, v := range g.Neighbors(u) {
			if u >= v {
				continue
			}
			_, uIn := sol[u]
			_, vIn := sol[v]
			if !uIn && !vIn {
				return false
			}
		}
	}
	return true
}

// BruteForceMaxIndependentSet finds an exact maximum independent set
// by exhaustive search, usable only as a test oracle for small graphs
// (the search is exponential in |V|), mirroring
// brute_force_max_independent_set.
func BruteForceMaxIndependentSet(g *core.Graph) map[core.VertexID]struct{} {
	vs := g.Vertices()
	var best map[core.VertexID]struct{}
	var rec func(i int, cur map[core.VertexID]struct{})
	rec = func(i int, cur map[core.VertexID]struct{}) {
		if i == len(vs) {
			if IsIndependentSet(g, cur) && (best == nil || len(cur) > len(best)) {
				best = copyVertexSet(cur)
			}
			return
		}
		cur[vs[i]] = struct{}{}
		rec(i+1, cur)
		delete(cur, vs[i])
		rec(i+1, cur)
	}
	rec(0, map[core.VertexID]struct{}{})
	if best == nil {
		best = map[core.VertexID]struct{}{}
	}
	return best
}

// BruteForceMinVertexCover finds an exact minimum vertex cover by
// exhaustive search, usable only as a test oracle for small graphs,
// mirroring brute_force_min_vertex_cover.
func BruteForceMinVertexCover(g *core.Graph) map[core.VertexID]struct{} {
	vs := g.Vertices()
	var best map[core.VertexID]struct{}
	var rec func(i int, cur map[core.VertexID]struct{})
	rec = func(i int, cur map[core.VertexID]struct{}) {
		if i == len(vs) {
			if IsVertexCover(g, cur) && (best == nil || len(cur) < len(best)) {
				best = copyVertexSet(cur)
			}
			return
		}
		cur[vs[i]] = struct{}{}
		rec(i+1, cur)
		delete(cur, vs[i])
		rec(i+1, cur)
	}
	rec(0, map[core.VertexID]struct{}{})
	if best == nil {
		best = map[core.VertexID]struct{}{}
	}
	return best
}

func copyVertexSet(s map[core.VertexID]struct{}) map[core.VertexID]struct{} {
	out := make(map[core.VertexID]struct{}, len(s))
	for v := range s {
		out[v] = struct{}{}
	}
	return out
}
