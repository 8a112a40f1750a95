// Package dcel implements a Doubly-Connected Edge List: the planar
// embedding data structure shared by the embedder, the triangulation
// step and the face-dual graph builder.
//
// A DCEL here is an arena of three parallel slices (vertices, darts,
// faces) addressed by integer ID, not a web of pointers/Rc<RefCell>
// cells as in the original implementation this module was distilled
// from. Go has no borrow checker to make a cyclic pointer graph safe,
// and nothing in this module needs a vertex/dart/face to be freed
// before the whole Store is: every entity lives for the Store's
// lifetime, so index-based references are both simpler and cheaper
// than pointer-chasing through reference-counted cells.
//
// Each undirected edge is represented by a pair of twin Darts, one per
// direction, following the textbook DCEL layout:
//
//	Twin(Twin(d))      == d
//	Next(Prev(d))      == d
//	Prev(Next(d))      == d
//	Target(d)          == Origin(Twin(d))
package dcel

// VertexID, DartID and FaceID index into a Store's arenas. The zero
// value is a valid ID (index 0); a missing reference uses the
// dedicated NoDart/NoFace sentinels (-1), not the zero value.
type VertexID int
type DartID int
type FaceID int

// NoDart and NoFace mark "not yet set" fields during incremental
// construction (e.g. a Face created before its boundary walk is
// known).
const (
	NoDart DartID = -1
	NoFace FaceID = -1
)

// Vertex is a node of the embedded graph. Dart is any one half-edge
// whose Origin is this vertex; walking Next(Twin(d)) around Dart
// enumerates every dart leaving it in rotational order.
type Vertex struct {
	Dart  DartID
	Label string
}

// Dart is a directed half-edge: Origin --> Target.
type Dart struct {
	Origin VertexID
	Target VertexID
	Twin   DartID
	Next   DartID
	Prev   DartID
	Face   FaceID
}

// Face is a bounded (or, for the single outer face, unbounded) region
// of the embedding, identified by any one dart on its boundary walk.
type Face struct {
	Dart DartID
}
