package dcel

// Store is an arena-backed DCEL: every Vertex/Dart/Face lives in a
// slice, addressed by its index. The zero Store is an empty, usable
// Store (NewStore returns one); embed.Embed returns a populated one.
type Store struct {
	vertices []Vertex
	darts    []Dart
	faces    []Face
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// NewVertex adds an isolated vertex (no incident dart yet) and
// returns its ID.
func (s *Store) NewVertex(label string) VertexID {
	s.vertices = append(s.vertices, Vertex{Dart: NoDart, Label: label})
	return VertexID(len(s.vertices) - 1)
}

// NewFace adds a face whose boundary walk starts at d and returns its
// ID. d's Face field is not updated by this call; callers that build
// a face incrementally call SetFace on every dart of the boundary
// walk themselves (see AutoFace for the common "derive from Next"
// case).
func (s *Store) NewFace(d DartID) FaceID {
	s.faces = append(s.faces, Face{Dart: d})
	return FaceID(len(s.faces) - 1)
}

func (s *Store) newDart(origin, target VertexID) DartID {
	s.darts = append(s.darts, Dart{Origin: origin, Target: target, Twin: NoDart, Next: NoDart, Prev: NoDart, Face: NoFace})
	return DartID(len(s.darts) - 1)
}

// NumVertices, NumDarts and NumFaces report arena sizes.
func (s *Store) NumVertices() int { return len(s.vertices) }
func (s *Store) NumDarts() int    { return len(s.darts) }
func (s *Store) NumFaces() int    { return len(s.faces) }

func (s *Store) hasVertex(v VertexID) bool { return v >= 0 && int(v) < len(s.vertices) }
func (s *Store) hasDart(d DartID) bool     { return d >= 0 && int(d) < len(s.darts) }
func (s *Store) hasFace(f FaceID) bool     { return f >= 0 && int(f) < len(s.faces) }

// Vertex, DartAt and FaceAt return the entity for an ID, panicking if
// the ID is out of range: these are the hot-path accessors used by
// every traversal in embed/decomp, and a bad ID there is always this
// package's own bug, never caller input.
func (s *Store) Vertex(v VertexID) Vertex { return s.vertices[v] }
func (s *Store) DartAt(d DartID) Dart     { return s.darts[d] }
func (s *Store) FaceAt(f FaceID) Face     { return s.faces[f] }

// VertexDart returns any one dart with Origin == v.
func (s *Store) VertexDart(v VertexID) DartID { return s.vertices[v].Dart }

// Twin, Next, Prev, Target, Origin and FaceOf are the textbook DCEL
// navigation primitives, operating on DartIDs.
func (s *Store) Twin(d DartID) DartID     { return s.darts[d].Twin }
func (s *Store) Next(d DartID) DartID     { return s.darts[d].Next }
func (s *Store) Prev(d DartID) DartID     { return s.darts[d].Prev }
func (s *Store) Target(d DartID) VertexID { return s.darts[d].Target }
func (s *Store) Origin(d DartID) VertexID { return s.darts[d].Origin }
func (s *Store) FaceOf(d DartID) FaceID   { return s.darts[d].Face }
func (s *Store) FaceDart(f FaceID) DartID { return s.faces[f].Dart }

// SetFace stamps f onto every dart of d's Next-boundary-walk (the
// common pattern after a face is cut or merged).
func (s *Store) SetFace(d DartID, f FaceID) {
	start := d
	for {
		s.darts[d].Face = f
		d = s.darts[d].Next
		if d == start {
			break
		}
	}
}

// AutoFace walks d's Next-chain, creates a new Face over it, and
// stamps every dart on the walk with that Face's ID. It is the
// standard way to (re)materialize face bookkeeping after Next/Prev
// pointers have been relinked by a surgery operation, without having
// to reason about face identity during the surgery itself.
func (s *Store) AutoFace(d DartID) FaceID {
	f := s.NewFace(d)
	s.SetFace(d, f)
	return f
}

// RotationNext returns the next dart leaving Origin(d) in clockwise
// rotational order: Next(Twin(d)).
func (s *Store) RotationNext(d DartID) DartID {
	return s.darts[s.darts[d].Twin].Next
}

// RotationPrev returns the previous dart leaving Origin(d) in
// clockwise rotational order: Twin(Prev(d)).
func (s *Store) RotationPrev(d DartID) DartID {
	return s.darts[s.darts[d].Prev].Twin
}

// OutgoingDarts enumerates every dart with Origin == v, in rotational
// order starting from Vertex(v).Dart.
func (s *Store) OutgoingDarts(v VertexID) []DartID {
	start := s.vertices[v].Dart
	if start == NoDart {
		return nil
	}
	var out []DartID
	d := start
	for {
		out = append(out, d)
		d = s.RotationNext(d)
		if d == start {
			break
		}
	}
	return out
}

// FaceBoundary enumerates the darts of f's boundary walk in order,
// starting from FaceAt(f).Dart.
func (s *Store) FaceBoundary(f FaceID) []DartID {
	start := s.faces[f].Dart
	var out []DartID
	d := start
	for {
		out = append(out, d)
		d = s.darts[d].Next
		if d == start {
			break
		}
	}
	return out
}

// AddEdge inserts a new pair of twin darts between u and v, splicing
// them into the rotational order immediately after afterU (a dart
// already leaving u) and afterV (a dart already leaving v). Both
// afterU and afterV must lie on the same face, which is split into
// two; AutoFace is called on each half. This is the single structural
// primitive the embedder's Phase 3 replay uses to re-insert a reduced
// vertex's spokes, and the triangulation step uses to add diagonals.
func (s *Store) AddEdge(u, v VertexID, afterU, afterV DartID) (DartID, DartID) {
	du := s.newDart(u, v)
	dv := s.newDart(v, u)
	s.darts[du].Twin = dv
	s.darts[dv].Twin = du

	s.spliceAfter(afterU, du)
	s.spliceAfter(afterV, dv)

	s.AutoFace(du)
	s.AutoFace(dv)
	return du, dv
}

// spliceAfter inserts newDart into the Next/Prev chain so that it
// becomes the boundary edge following "after": Next(after) == newDart
// and Prev(original Next(after)) == newDart's twin's appropriate
// partner. Concretely: newDart starts the face walk right after
// "after", and its twin closes the walk on the other new face.
func (s *Store) spliceAfter(after, newDart DartID) {
	afterNext := s.darts[after].Next
	twin := s.darts[newDart].Twin

	s.darts[after].Next = newDart
	s.darts[newDart].Prev = after

	s.darts[newDart].Next = twin
	s.darts[twin].Prev = newDart

	s.darts[twin].Next = afterNext
	s.darts[afterNext].Prev = twin

	if s.vertices[s.darts[newDart].Origin].Dart == NoDart {
		s.vertices[s.darts[newDart].Origin].Dart = newDart
	}
}

// NewFaceBootstrap creates the first edge between two previously
// isolated vertices u and v: a bridge with a single face (both darts
// lie on the same boundary walk, traversed once in each direction,
// since a lone edge does not separate the plane into two regions).
// AddEdge cannot be used for this because it needs an existing
// boundary dart to splice after; every DCEL has to start somewhere,
// and this is that starting point. Tests that build a DCEL from
// scratch use this once, then AddEdge for everything after (embed's
// Phase 2 builds its K4 base with BuildFromFaces instead).
func (s *Store) NewFaceBootstrap(u, v VertexID) DartID {
	du := s.newDart(u, v)
	dv := s.newDart(v, u)
	s.darts[du].Twin = dv
	s.darts[dv].Twin = du
	s.darts[du].Next = dv
	s.darts[du].Prev = dv
	s.darts[dv].Next = du
	s.darts[dv].Prev = du

	s.vertices[u].Dart = du
	s.vertices[v].Dart = dv

	s.AutoFace(du)
	return du
}

// SpliceNewVertex attaches a brand-new vertex v to the embedding with
// a single edge to Origin(afterU), splicing the new dart into the
// rotation right after afterU and splitting afterU's face. It
// allocates the vertex and then calls AttachFirstEdge, the primitive
// embed's Phase 3 replay uses directly to insert a reduced vertex's
// first spoke; AddEdge (which needs both endpoints to already have a
// dart) handles every spoke after the first.
func (s *Store) SpliceNewVertex(afterU DartID, label string) (VertexID, DartID) {
	v := s.NewVertex(label)
	du := s.AttachFirstEdge(afterU, v)
	return v, du
}

// AttachFirstEdge connects the already-allocated, still dart-less
// vertex v to Origin(afterU) with v's first edge, splicing into the
// rotation right after afterU. Used directly by embed's Phase 3
// replay, which first finds the face to splice into, then allocates
// the new vertex with NewVertex (recording its ID in vmap) and calls
// this; SpliceNewVertex is the same operation for callers that
// allocate the vertex and pick the splice point in one step.
func (s *Store) AttachFirstEdge(afterU DartID, v VertexID) DartID {
	u := s.darts[afterU].Origin

	du := s.newDart(u, v)
	dv := s.newDart(v, u)
	s.darts[du].Twin = dv
	s.darts[dv].Twin = du
	s.darts[dv].Next = du
	s.darts[dv].Prev = du
	s.vertices[v].Dart = dv

	s.spliceAfter(afterU, du)
	s.AutoFace(du)
	return du
}

// RemoveEdge deletes the edge represented by dart d and its twin,
// merging the (up to) two faces it bordered back into one and
// returning the surviving dart from which that merged face's boundary
// can be walked. The embedder's Phase 3 replay uses it to remove the
// shortcut chords Phase 1 added: cutting a diagonal merges two
// triangles back into the k-gon they were triangulated from.
func (s *Store) RemoveEdge(d DartID) DartID {
	t := s.darts[d].Twin
	if s.darts[t].Twin != d {
		invariantf("RemoveEdge: dart %d and twin %d are not a consistent pair", d, t)
	}

	dPrev, dNext := s.darts[d].Prev, s.darts[d].Next
	tPrev, tNext := s.darts[t].Prev, s.darts[t].Next

	s.darts[tPrev].Next = dNext
	s.darts[dNext].Prev = tPrev
	s.darts[dPrev].Next = tNext
	s.darts[tNext].Prev = dPrev

	origin, target := s.darts[d].Origin, s.darts[t].Origin
	if s.vertices[origin].Dart == d {
		s.vertices[origin].Dart = s.anyOtherOutgoing(origin, d)
	}
	if s.vertices[target].Dart == t {
		s.vertices[target].Dart = s.anyOtherOutgoing(target, t)
	}

	survivor := dNext
	s.AutoFace(survivor)
	return survivor
}

// anyOtherOutgoing finds a dart with Origin == v other than exclude,
// for repairing Vertex.Dart after exclude is deleted. exclude's own
// Next/Prev links are already stale at this point, so the rotation
// walk can't be used; a linear scan over the arena is correct and,
// since this only runs once per RemoveEdge call, cheap enough.
func (s *Store) anyOtherOutgoing(v VertexID, exclude DartID) DartID {
	for id, dart := range s.darts {
		if DartID(id) != exclude && dart.Origin == v {
			return DartID(id)
		}
	}
	return NoDart
}
