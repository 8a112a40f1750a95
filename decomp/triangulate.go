package decomp

import "github.com/kestrelgraph/plantas/dcel"

// Triangulate adds diagonals to every non-triangular face of s so
// every face becomes a triangle, fanning out from a single start
// vertex per face. It returns the vertex pairs it added. Faces
// already triangular (the common case for a Store built by
// embed.Embed, which is already maximal planar) contribute nothing.
//
// Walking a face's boundary to pick the fan's start vertex has one
// special case: if the face's first dart is an "outgoing edge" - the
// target of its successor on the walk is the target of its own twin,
// i.e. the walk returns to the first dart's origin after two steps
// rather than forming a proper corner - the walk starts one dart
// later, or the fan point would be degenerate.
func Triangulate(s *dcel.Store) [][2]dcel.VertexID {
	var added [][2]dcel.VertexID
	numFaces := s.NumFaces()
	for f := 0; f < numFaces; f++ {
		added = append(added, triangulateFace(s, dcel.FaceID(f))...)
	}
	return added
}

func triangulateFace(s *dcel.Store, f dcel.FaceID) [][2]dcel.VertexID {
	current := s.FaceAt(f).Dart

	if s.Next(s.Next(current)) == current {
		// Digon or single edge: fewer than 3 distinct vertices, nothing to triangulate.
		return nil
	}
	if s.Target(s.Next(current)) == s.Target(s.Twin(current)) {
		current = s.Next(current)
	}

	start := s.Target(s.Twin(current))
	startVertex := start

	var added [][2]dcel.VertexID
	for {
		next := s.Next(current)
		if s.Target(s.Next(next)) == startVertex {
			break
		}
		from := s.Target(next)

		afterFrom := next
		afterStart := findOutgoingDartAlongFace(s, f, startVertex, current)
		s.AddEdge(from, startVertex, afterFrom, afterStart)
		dcel.CheckInvariants(s)
		added = append(added, [2]dcel.VertexID{from, startVertex})

		current = next
	}
	return added
}

// findOutgoingDartAlongFace returns the first dart on f's boundary
// walk whose origin is startVertex; if the walk has none, it returns
// Twin(fallback), where the caller passes the boundary dart it is
// currently processing.
func findOutgoingDartAlongFace(s *dcel.Store, f dcel.FaceID, startVertex dcel.VertexID, fallback dcel.DartID) dcel.DartID {
	for _, d := range s.FaceBoundary(f) {
		if s.Origin(d) == startVertex {
			return d
		}
	}
	return s.Twin(fallback)
}
