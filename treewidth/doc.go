// Package treewidth supplies tree decompositions to the dp engine for
// graphs that are not necessarily maximal planar - the survivor
// components a ring decomposition hands to ptas are arbitrary
// bounded-treewidth subgraphs, not triangulations, so they cannot go
// through the embed/decomp pipeline (which requires an
// already-maximal-planar input).
//
// Solver is the seam a real treewidth library would plug into; Naive
// is the only implementation this module ships, building one
// Introduce chain from a singleton leaf up to the full vertex set.
// Its decomposition width equals |V|-1, which is correct but useless
// for anything but small survivor components - exactly what "naive"
// is supposed to mean here.
package treewidth
