package dcel

import jsoniter "github.com/json-iterator/go"

var snapshotJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// Snapshot is a plain-data view of a Store's arenas, suitable for
// diffing in tests (go-cmp) or printing from the CLI's --json flag.
type Snapshot struct {
	Vertices []Vertex `json:"vertices"`
	Darts    []Dart   `json:"darts"`
	Faces    []Face   `json:"faces"`
}

// Snapshot returns a Snapshot of s.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Vertices: append([]Vertex(nil), s.vertices...),
		Darts:    append([]Dart(nil), s.darts...),
		Faces:    append([]Face(nil), s.faces...),
	}
}

// DumpJSON renders s as an indented JSON snapshot.
func (s *Store) DumpJSON() (string, error) {
	b, err := snapshotJSON.MarshalIndent(s.Snapshot(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
