// Package dot reads and writes the small subset of GraphViz DOT syntax
// this module's CLI collaborator needs: an undirected graph, optional
// standalone node statements, and edge statements of the form `a --
// b` (optionally chained, `a -- b -- c`), with `digraph` rejected.
// Grounded on data_structure/dot_{reader,renderer}.rs; the reader's
// grammar is expressed with github.com/alecthomas/participle instead
// of the original's graphviz_parser crate, per this module's
// dependency plan.
package dot
