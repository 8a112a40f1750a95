package decomp

import "github.com/kestrelgraph/plantas/dcel"

// DualGraph connects two faces iff the primal edge they share lies on
// the given spanning tree. It is not the full face-adjacency dual
// (that would connect every pair of faces sharing any edge); only
// spanning-tree edges participate, because BuildBags walks this graph
// as a tree, and the full dual of a triangulation is not acyclic.
func DualGraph(s *dcel.Store, tree *SpanningTree) map[dcel.FaceID][]dcel.FaceID {
	adj := make(map[dcel.FaceID][]dcel.FaceID)
	seenEdge := make(map[[2]dcel.FaceID]bool)

	numFaces := s.NumFaces()
	for f := 0; f < numFaces; f++ {
		face := dcel.FaceID(f)
		for _, d := range s.FaceBoundary(face) {
			u, v := s.Origin(d), s.Target(d)
			if !tree.IsTreeEdge(u, v) {
				continue
			}
			other := s.FaceOf(s.Twin(d))
			if other == face {
				continue
			}
			key := [2]dcel.FaceID{face, other}
			if face > other {
				key = [2]dcel.FaceID{other, face}
			}
			if seenEdge[key] {
				continue
			}
			seenEdge[key] = true
			adj[face] = append(adj[face], other)
			adj[other] = append(adj[other], face)
		}
	}
	return adj
}
