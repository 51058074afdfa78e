// Package dataset — classification progress tracking.
package dataset

// ClassifiedSet is a mutable set of instance identities already assigned to
// some completed facet loop.
//
// Invariants:
//   - grows monotonically (there is no removal),
//   - Add is idempotent,
//   - Size equals the number of distinct identities added so far.
//
// Lookups and inserts are O(1) average, keyed by the stable Instance.ID, so
// two instances with equal coordinates never collide.
// Not safe for concurrent mutation; the peeling driver is single-threaded.
type ClassifiedSet struct {
	members map[int]struct{}
}

// NewClassifiedSet returns an empty set sized for about hint identities.
// A non-positive hint is allowed and simply skips pre-sizing.
func NewClassifiedSet(hint int) *ClassifiedSet {
	if hint < 0 {
		hint = 0
	}
	return &ClassifiedSet{members: make(map[int]struct{}, hint)}
}

// Contains reports whether id was passed to Add before.
func (s *ClassifiedSet) Contains(id int) bool {
	_, ok := s.members[id]
	return ok
}

// Add inserts id into the set. Re-adding an existing id is a no-op,
// so a loop-closing vertex is counted exactly once.
func (s *ClassifiedSet) Add(id int) {
	s.members[id] = struct{}{}
}

// Size returns the number of distinct identities added so far.
func (s *ClassifiedSet) Size() int { return len(s.members) }
