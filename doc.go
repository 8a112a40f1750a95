// Package plantas is a polynomial-time approximation scheme toolkit
// for planar graphs: Maximum Independent Set and Minimum Vertex Cover
// via Baker's layering technique, built on a from-scratch DCEL planar
// embedder and nice-tree-decomposition dynamic programming engine.
//
// The module is organized as a pipeline of subpackages, each usable on
// its own:
//
//	core/      - the abstract input graph G = (V,E)
//	dcel/      - the doubly connected edge list a planar embedding lives in
//	embed/     - Embed(g): maximal planar graph -> DCEL embedding
//	decomp/    - DCEL embedding -> nice tree decomposition
//	dp/        - dynamic programming over a nice tree decomposition
//	treewidth/ - a generic tree-decomposition Solver for non-planar subgraphs
//	ptas/      - Baker's layering technique, tying the above together
//	genplanar/ - deterministic and random planar test graph generators
//	dot/       - a GraphViz DOT reader/writer
//	cmd/plantas - the CLI wired on top of all of the above
package plantas
