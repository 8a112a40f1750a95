// Package core defines the abstract input graph G = (V,E): a simple,
// undirected, unweighted graph over dense integer vertex IDs.
//
// This is the type every other package in this module consumes or
// produces: genplanar and dot build a Graph, embed.Embed consumes one
// and produces a dcel.Store, and ptas.Solve takes one alongside a
// ptas.Problem.
//
// Graph is deliberately narrow. It carries none of the directed/
// weighted/multi-edge/loop machinery a general-purpose graph library
// needs, because none of it applies here: embeddings, tree
// decompositions and the MIS/MVC DP engine all operate on simple
// undirected graphs.
//
// Core methods:
//
//	AddVertex(label string) VertexID
//	AddEdge(u, v VertexID) error
//	HasEdge(u, v VertexID) bool
//	Neighbors(v VertexID) []VertexID
//	Degree(v VertexID) int
//	NumVertices() int
//	NumEdges() int
//	Clone() *Graph
package core
