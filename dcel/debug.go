//go:build debugdcel

package dcel

// CheckInvariants panics on the first structural violation found in s.
// Only compiled in with the debugdcel build tag; embed and decomp call
// it after every surgery step during development and in CI, not in
// normal builds, since a full Validate pass is O(V+E) and surgery runs
// once per vertex.
func CheckInvariants(s *Store) {
	s.MustValidate()
}
