// Package embed computes a maximal planar embedding of an input graph
// and materializes it as a dcel.Store, following the three-phase
// linear-time reduction algorithm: repeatedly remove a low-degree
// "reducible" vertex while recording enough information to restore it
// (Phase 1), embed the resulting 4-vertex core as K4 (Phase 2), then
// replay the removals in reverse, re-inserting each vertex into the
// face its neighborhood vacated (Phase 3).
//
// Embed requires its input to already be a maximal planar graph (or a
// subgraph of one reducible down to K4 by the predicate in
// reducible.go); genplanar.RandomMaximalPlanar always produces such
// graphs. dot.Read does not check planarity; checking a graph read
// from DOT is the caller's responsibility before calling Embed.
package embed
