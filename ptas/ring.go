package ptas

import "github.com/kestrelgraph/plantas/core"

// bfsLevels1Indexed runs a BFS from root using a queue sentinel to
// mark level boundaries, assigning the root level 1 - matching
// get_ring_decompositions exactly rather than the 0-indexed BFS the
// decomp package's spanning tree uses, since this module's ring-shift
// rule (level % k == i) is defined against the original's 1-indexed
// convention.
func bfsLevels1Indexed(g *core.Graph, root core.VertexID) map[core.VertexID]int {
	const sep = core.VertexID(-1)

	level := make(map[core.VertexID]int)
	visited := make(map[core.VertexID]bool)
	queue := []core.VertexID{root, sep}
	current := 1

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		if v == sep {
			current++
			if len(queue) > 0 {
				queue = append(queue, sep)
			}
			continue
		}
		if visited[v] {
			continue
		}
		visited[v] = true
		level[v] = current

		for _, n := range g.Neighbors(v) {
			queue = append(queue, n)
		}
	}

	return level
}

// ringDecomposition is one shift's survivor set: the subset of
// vertices whose BFS level is not congruent to the shift index i
// mod k, plus the vertices that were deleted to produce it.
type ringDecomposition struct {
	survivors map[core.VertexID]bool
	deleted   map[core.VertexID]bool
}

// ringDecompositions builds all k = ceil(1/eps) shifts of g.
func ringDecompositions(g *core.Graph, k int) []ringDecomposition {
	root := g.Vertices()[0]
	levels := bfsLevels1Indexed(g, root)

	out := make([]ringDecomposition, k)
	for i := 0; i < k; i++ {
		survivors := make(map[core.VertexID]bool)
		deleted := make(map[core.VertexID]bool)
		for _, v := range g.Vertices() {
			if levels[v]%k == i {
				deleted[v] = true
			} else {
				survivors[v] = true
			}
		}
		out[i] = ringDecomposition{survivors: survivors, deleted: deleted}
	}
	return out
}
