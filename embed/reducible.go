package embed

// smallDegreeThreshold is the "small neighbor" cutoff used by the
// reducibility predicate. A degree-4 vertex needs 2 small neighbors
// and a degree-5 vertex needs 4 to be reducible; degree <= 3 is always
// reducible. "Small" here means degree < smallDegreeThreshold, the
// same bound used throughout the reduction: it must be large enough
// that the shortcut edges phase1 adds for degree-4/5 removals cannot
// themselves push a neighbor's degree into the reducibility
// predicate's own gray zone before updateReducibleSet has a chance to
// re-check it (18 is the bound this module was distilled from using).
const smallDegreeThreshold = 18

// workGraph is a mutable adjacency-set view of the input graph used
// only during Phase 1's reduction. core.Graph is dense-indexed and
// append-only by design (every downstream package relies on that), so
// Phase 1 works against its own copy instead of mutating the caller's
// Graph.
type workGraph struct {
	adj map[int]map[int]struct{}
}

func newWorkGraph(n int, edges func(yield func(u, v int))) *workGraph {
	wg := &workGraph{adj: make(map[int]map[int]struct{}, n)}
	for i := 0; i < n; i++ {
		wg.adj[i] = make(map[int]struct{})
	}
	edges(func(u, v int) {
		wg.adj[u][v] = struct{}{}
		wg.adj[v][u] = struct{}{}
	})
	return wg
}

func (wg *workGraph) degree(v int) int { return len(wg.adj[v]) }

func (wg *workGraph) neighbors(v int) []int {
	out := make([]int, 0, len(wg.adj[v]))
	for n := range wg.adj[v] {
		out = append(out, n)
	}
	return out
}

func (wg *workGraph) hasEdge(u, v int) bool {
	_, ok := wg.adj[u][v]
	return ok
}

func (wg *workGraph) addEdge(u, v int) {
	wg.adj[u][v] = struct{}{}
	wg.adj[v][u] = struct{}{}
}

func (wg *workGraph) removeVertex(v int) {
	for n := range wg.adj[v] {
		delete(wg.adj[n], v)
	}
	delete(wg.adj, v)
}

func (wg *workGraph) numVertices() int { return len(wg.adj) }

// smallNeighborCount counts v's neighbors with degree below
// smallDegreeThreshold.
func (wg *workGraph) smallNeighborCount(v int) int {
	count := 0
	for n := range wg.adj[v] {
		if wg.degree(n) < smallDegreeThreshold {
			count++
		}
	}
	return count
}

// isReducible is the core predicate: a vertex can be safely pulled out
// of a maximal planar triangulation (and later re-inserted) if its
// removal cannot create a face that itself needs splitting by more
// than the one/two shortcut chords phase1 knows how to add.
func (wg *workGraph) isReducible(v int) bool {
	d := wg.degree(v)
	switch {
	case d <= 3:
		return true
	case d == 4:
		return wg.smallNeighborCount(v) >= 2
	case d == 5:
		return wg.smallNeighborCount(v) >= 4
	default:
		return false
	}
}
