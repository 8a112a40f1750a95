package embed

import (
	"sort"

	"github.com/kestrelgraph/plantas/core"
	"github.com/kestrelgraph/plantas/dcel"
)

// Option configures Embed.
type Option func(*options)

type options struct {
	validateEachStep bool
}

// WithValidation makes Embed call Store.Validate once on the finished
// embedding and return any violation as an error. Without it, Embed
// does not validate its result. Useful when debugging a new genplanar
// constructor; adds one O(V+E) pass.
func WithValidation() Option {
	return func(o *options) { o.validateEachStep = true }
}

// Embed computes a maximal planar embedding of g and returns it as a
// dcel.Store, along with the mapping from g's VertexIDs to the
// Store's. g must already be a maximal planar graph (every face a
// triangle); Embed does not triangulate its input.
func Embed(g *core.Graph, opts ...Option) (*dcel.Store, map[core.VertexID]dcel.VertexID, error) {
	cfg := &options{}
	for _, opt := range opts {
		opt(cfg)
	}

	n := g.NumVertices()
	if n < 4 {
		return nil, nil, ErrTooFewVertices
	}

	wg := newWorkGraph(n, func(yield func(u, v int)) {
		for _, v := range g.Vertices() {
			for _, w := range g.Neighbors(v) {
				if int(v) < int(w) {
					yield(int(v), int(w))
				}
			}
		}
	})

	stack, err := reduce(wg)
	if err != nil {
		return nil, nil, err
	}

	remaining := make([]int, 0, 4)
	for v := range wg.adj {
		remaining = append(remaining, v)
	}
	sort.Ints(remaining)

	store, base, err := embedK4(remaining)
	if err != nil {
		return nil, nil, err
	}

	vmap := make(map[core.VertexID]dcel.VertexID, n)
	for localID, dcelID := range base {
		vmap[core.VertexID(localID)] = dcelID
	}

	intVMap := make(map[int]dcel.VertexID, n)
	for k, v := range vmap {
		intVMap[int(k)] = v
	}

	if err := replay(store, intVMap, stack); err != nil {
		return nil, nil, err
	}

	out := make(map[core.VertexID]dcel.VertexID, n)
	for k, v := range intVMap {
		out[core.VertexID(k)] = v
	}

	if cfg.validateEachStep {
		if err := store.Validate(); err != nil {
			return nil, nil, err
		}
	}

	return store, out, nil
}
