// Package ptas implements Baker's layering technique: a
// polynomial-time approximation scheme for Maximum Independent Set
// and Minimum Vertex Cover on planar graphs, grounded on
// algorithm/ptas.rs.
//
// For k = ceil(1/eps), Solve builds k ring decompositions of the
// input graph (shift i deletes every vertex whose 1-indexed BFS level
// is congruent to i mod k), solves the chosen problem exactly on each
// connected component of the survivors via a treewidth.Solver and the
// dp engine, unions the per-component solutions, and - for
// minimization problems - adds back the deleted vertices, which
// trivially cover every edge touching them. The best of the k
// candidate solutions is returned. At least one shift deletes at most
// an eps fraction of the vertices, which is where the (1±eps)
// approximation guarantee comes from.
package ptas
