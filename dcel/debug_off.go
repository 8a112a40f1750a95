//go:build !debugdcel

package dcel

// CheckInvariants is a no-op outside the debugdcel build tag.
func CheckInvariants(s *Store) {}
