package decomp

import "github.com/kestrelgraph/plantas/dcel"

// Bag is one node of a raw (not-yet-nice) tree decomposition.
type Bag struct {
	ID       int
	Vertices map[dcel.VertexID]struct{}
	Children []int
	Parent   int // -1 for the root
}

// RawTD is a raw tree decomposition: one Bag per face of the
// embedding, connected exactly as the face dual is.
type RawTD struct {
	Bags []*Bag
	Root int
}

// BuildBags walks dual starting at rootFace, creating one bag per
// face: the union of the face's own vertices and, for each of those,
// its full spanning-tree ancestor chain. This guarantees every edge
// of the primal graph is covered by some bag (the two endpoints of a
// tree edge share an ancestor relationship; the two endpoints of a
// non-tree edge lie on a common face, since the embedding is
// triangulated) and that the bags containing any one vertex form a
// connected subtree (the running-intersection property), since a
// vertex enters a bag only via its face-membership or its position in
// a single root-to-leaf ancestor chain.
func BuildBags(s *dcel.Store, dual map[dcel.FaceID][]dcel.FaceID, tree *SpanningTree, rootFace dcel.FaceID) (*RawTD, error) {
	if int(rootFace) < 0 || int(rootFace) >= s.NumFaces() {
		return nil, ErrNoRoot
	}

	td := &RawTD{}
	visited := make(map[dcel.FaceID]bool)

	var visit func(face dcel.FaceID, parentBag int) int
	visit = func(face dcel.FaceID, parentBag int) int {
		visited[face] = true
		bag := &Bag{ID: len(td.Bags), Vertices: faceBagVertices(s, tree, face), Parent: parentBag}
		td.Bags = append(td.Bags, bag)
		id := bag.ID
		if parentBag >= 0 {
			td.Bags[parentBag].Children = append(td.Bags[parentBag].Children, id)
		}
		for _, child := range dual[face] {
			if !visited[child] {
				visit(child, id)
			}
		}
		return id
	}

	td.Root = visit(rootFace, -1)
	return td, nil
}

func faceBagVertices(s *dcel.Store, tree *SpanningTree, face dcel.FaceID) map[dcel.VertexID]struct{} {
	vertices := make(map[dcel.VertexID]struct{})
	for _, d := range s.FaceBoundary(face) {
		v := s.Target(d)
		for _, anc := range tree.AncestorChain(v) {
			vertices[anc] = struct{}{}
		}
	}
	return vertices
}
