// Package hull — output types and loop validation.
//
// This file contains the frozen-output model shared by the driver and its
// callers:
//   - Loop: one closed, label-tagged facet loop with its measurements.
//   - Partition: the ordered collection of loops plus a completeness flag.
//   - ValidateLoop: enforce closed-loop invariants on a single Loop.
//
// Design:
//   - Loops store the closing vertex explicitly: Vertices[len-1] repeats
//     Vertices[0] by identity, the usual closed-tour convention for cycle
//     outputs (n distinct vertices stored as n+1 entries).
//   - Instances are referenced, not copied; a Loop stays valid as long as
//     the Dataset it was peeled from.
package hull

import (
	"fmt"

	"github.com/JAPNIT/topology-and-meta-learning/dataset"
)

// Loop is one frozen facet loop: a closed sequence of same-label instances,
// walked in peel order, with the closing vertex repeating the first.
type Loop[L comparable] struct {
	// Label is the class tag chosen when the loop was seeded.
	Label L

	// Vertices is the closed pivot sequence; Vertices[0] and
	// Vertices[len-1] are the same instance (same identity).
	Vertices []dataset.Instance[L]

	// Volume is the unsigned fan volume swept by the loop's facet windows
	// against its first vertex (simplex volumes summed, no cancellation).
	Volume float64

	// Enclosed counts the instances that were still unclassified when this
	// loop froze and that lie inside it; they surface in later peels.
	Enclosed int
}

// Len returns the number of distinct vertices (the closing repeat excluded).
func (l Loop[L]) Len() int {
	if len(l.Vertices) == 0 {
		return 0
	}
	return len(l.Vertices) - 1
}

// Size returns the number of instances this loop accounts for: its distinct
// vertices plus the instances it encloses.
func (l Loop[L]) Size() int { return l.Len() + l.Enclosed }

// Partition is the full peeling output: loops in the order they were frozen
// (outermost layers first per label region).
type Partition[L comparable] struct {
	// Loops holds every completed loop.
	Loops []Loop[L]

	// Complete is true when every Dataset instance was classified; false on
	// partial output returned alongside an error.
	Complete bool
}

// ValidateLoop enforces closed-loop invariants on a single Loop:
//
//	len(Vertices) >= k+1 (k distinct plus the closing repeat, k inferred
//	from the first vertex), Vertices[0].ID == Vertices[len-1].ID, no
//	identity repeats before the close, and every vertex carries the
//	loop's Label.
//
// Returns nil if valid.
//
// Complexity: O(v) time, O(v) space.
func ValidateLoop[L comparable](l Loop[L]) error {
	if len(l.Vertices) == 0 {
		return fmt.Errorf("%w: empty loop", ErrLoopTooShort)
	}
	var k = len(l.Vertices[0].Point)
	if len(l.Vertices) < k+1 {
		return fmt.Errorf("%w: %d vertices stored, need at least %d", ErrLoopTooShort, len(l.Vertices), k+1)
	}
	var last = len(l.Vertices) - 1
	if l.Vertices[0].ID != l.Vertices[last].ID {
		return fmt.Errorf("%w: first id %d, last id %d", ErrOpenLoop, l.Vertices[0].ID, l.Vertices[last].ID)
	}

	seen := make(map[int]struct{}, last)

	var (
		i int
		v dataset.Instance[L]
	)
	for i = 0; i < last; i++ {
		v = l.Vertices[i]
		if v.Label != l.Label {
			return fmt.Errorf("%w: vertex id %d", ErrLoopLabelMixed, v.ID)
		}
		if _, dup := seen[v.ID]; dup {
			return fmt.Errorf("%w: id %d", ErrLoopDuplicate, v.ID)
		}
		seen[v.ID] = struct{}{}
	}
	return nil
}
