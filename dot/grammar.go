package dot

import "github.com/alecthomas/participle"

// astFile is the participle grammar for this package's DOT subset:
//
//	(graph | digraph) Ident? "{" stmt* "}"
//	stmt := Ident ("-" "-" Ident)* ";"?
//
// Node statements are a stmt with no hops; edge statements chain one
// edge per hop, matching GraphViz's "a -- b -- c" shorthand for two
// edges sharing a vertex.
type astFile struct {
	Keyword string     `@("digraph"|"graph")`
	Name    string     `@Ident?`
	Stmts   []*astStmt `"{" @@* "}"`
}

type astStmt struct {
	ID   string   `@Ident`
	Hops []string `("-" "-" @Ident)*`
	_    string   `";"?`
}

var dotParser = participle.MustBuild(&astFile{})
