package dcel

import "fmt"

// BuildFromFaces constructs a Store directly from a complete face
// list: n vertices (0..n-1) and, for every face of the embedded
// surface, the cyclic sequence of vertex indices around its boundary,
// all faces oriented consistently (each edge {u,v} must appear as
// u->v in exactly one face and v->u in exactly one other face).
//
// This is the fastest way to build a small, fixed, well-known
// embedding by hand - embed's Phase 2 uses it for the K4 base case,
// and genplanar.RandomMaximalPlanar uses it to materialize its
// generated face list instead of incrementally splicing edges one at
// a time.
func BuildFromFaces(labels []string, faces [][]int) (*Store, error) {
	s := NewStore()
	for _, label := range labels {
		s.NewVertex(label)
	}
	n := len(labels)

	type key struct{ u, v VertexID }
	dartOf := make(map[key]DartID)

	for fi, face := range faces {
		k := len(face)
		if k < 3 {
			return nil, fmt.Errorf("dcel: face %d has fewer than 3 vertices", fi)
		}
		faceDarts := make([]DartID, k)
		for i := 0; i < k; i++ {
			u, v := face[i], face[(i+1)%k]
			if u < 0 || u >= n || v < 0 || v >= n {
				return nil, fmt.Errorf("dcel: face %d references out-of-range vertex", fi)
			}
			d := s.newDart(VertexID(u), VertexID(v))
			dartOf[key{VertexID(u), VertexID(v)}] = d
			faceDarts[i] = d
			if s.vertices[u].Dart == NoDart {
				s.vertices[u].Dart = d
			}
		}
		for i := 0; i < k; i++ {
			s.darts[faceDarts[i]].Next = faceDarts[(i+1)%k]
			s.darts[faceDarts[i]].Prev = faceDarts[(i-1+k)%k]
		}
		f := s.NewFace(faceDarts[0])
		for _, d := range faceDarts {
			s.darts[d].Face = f
		}
	}

	for k, d := range dartOf {
		twin, ok := dartOf[key{k.v, k.u}]
		if !ok {
			return nil, fmt.Errorf("dcel: edge %d->%d has no matching reverse dart; face list is not closed", k.u, k.v)
		}
		s.darts[d].Twin = twin
	}

	return s, nil
}
