// Package dp implements dynamic programming over a nice tree
// decomposition: a generic table-based engine (Table, TableEntry,
// Problem) plus two concrete problems, maximum independent set and
// minimum vertex cover, each supplying leaf/join/forget/introduce
// handlers. Grounded on the reference implementation's
// dynamic_programming module (solve.rs, max_independent_set.rs,
// min_vertex_cover.rs, utils.rs).
//
// Subsets of a bag are represented as Bitset values indexed into a
// shared Universe (every vertex appearing anywhere in the tree
// decomposition), mirroring the original's graph-order-sized BitVec:
// two subsets that denote the same vertices compare equal as map keys
// regardless of which bag produced them.
package dp
