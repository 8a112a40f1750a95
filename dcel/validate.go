package dcel

import "fmt"

// Validate checks the structural invariants a well-formed DCEL must
// satisfy and returns the first violation found, or nil. It never
// panics; callers that want a hard stop on corruption call
// MustValidate instead.
func (s *Store) Validate() error {
	for id, d := range s.darts {
		did := DartID(id)
		if !s.hasDart(d.Twin) {
			return fmt.Errorf("dart %d: twin %d out of range", did, d.Twin)
		}
		if s.darts[d.Twin].Twin != did {
			return fmt.Errorf("dart %d: twin(twin(d)) != d", did)
		}
		if !s.hasDart(d.Next) || !s.hasDart(d.Prev) {
			return fmt.Errorf("dart %d: next/prev out of range", did)
		}
		if s.darts[d.Next].Prev != did {
			return fmt.Errorf("dart %d: next(d).prev != d", did)
		}
		if s.darts[d.Prev].Next != did {
			return fmt.Errorf("dart %d: prev(d).next != d", did)
		}
		if s.darts[d.Twin].Origin != d.Target || s.darts[d.Twin].Target != d.Origin {
			return fmt.Errorf("dart %d: twin endpoints inconsistent", did)
		}
	}
	if err := s.validateEuler(); err != nil {
		return err
	}
	return nil
}

// validateEuler checks V - E + F == 2, the planarity sanity check
// every connected embedding must satisfy (spec.md's Euler invariant).
func (s *Store) validateEuler() error {
	v := len(s.vertices)
	e := len(s.darts) / 2
	f := len(s.faces)
	if v-e+f != 2 {
		return fmt.Errorf("euler invariant violated: V=%d E=%d F=%d, V-E+F=%d != 2", v, e, f, v-e+f)
	}
	return nil
}

// MustValidate panics if Validate finds a violation. Used by embed
// and decomp after every surgery step when built with the debugdcel
// build tag (through CheckInvariants, see debug.go / debug_off.go).
func (s *Store) MustValidate() {
	if err := s.Validate(); err != nil {
		invariantf("%s", err.Error())
	}
}
