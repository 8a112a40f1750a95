// Package genplanar builds test graphs for the rest of this module: a
// handful of deterministic named constructors (K4, Cycle, Wheel, Grid,
// the five Platonic solids), adapted from the teacher's builder
// package, plus RandomMaximalPlanar, a seeded generator that grows a
// maximal planar graph from K4 by repeated face stacking.
//
// RandomMaximalPlanar is grounded on the reference implementation's
// generation/planar.rs, which grows a ListGraph from K4 by repeatedly
// splitting a randomly chosen edge. This port instead works at the
// face level: it tracks the current triangulation's face list and
// splits a randomly chosen triangular face into three by adding a
// vertex connected to its corners (the stacked/Apollonian-network
// construction), then hands the finished face list to
// dcel.BuildFromFaces to obtain a real embedding before flattening it
// back to a core.Graph. Every intermediate and final graph is maximal
// planar by construction, so it is always valid input to embed.Embed.
package genplanar
