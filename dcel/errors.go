package dcel

import (
	"errors"
	"fmt"
)

// Sentinel errors naming Store precondition failures. No Store
// operation returns them: the ID accessors panic on an out-of-range ID,
// and RemoveEdge panics on an inconsistent twin pair.
var (
	// ErrVertexNotFound indicates a VertexID out of range for this Store.
	ErrVertexNotFound = errors.New("dcel: vertex not found")

	// ErrDartNotFound indicates a DartID out of range for this Store.
	ErrDartNotFound = errors.New("dcel: dart not found")

	// ErrFaceNotFound indicates a FaceID out of range for this Store.
	ErrFaceNotFound = errors.New("dcel: face not found")

	// ErrNotATwinPair names a dart whose twin does not point back to it
	// (not expected to occur against a Store built only through this
	// package's own mutators). RemoveEdge panics on this condition
	// rather than returning the error.
	ErrNotATwinPair = errors.New("dcel: dart and its twin are inconsistent")
)

// invariantf panics with a formatted message. Used internally after
// mutations that must never produce a broken DCEL; a panic here means
// this package itself has a bug, not that the caller passed bad input.
func invariantf(format string, args ...interface{}) {
	panic("dcel: invariant violated: " + fmt.Sprintf(format, args...))
}
