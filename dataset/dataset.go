// Package dataset — construction and read-only access.
//
// This file contains the Dataset container and its constructor:
//   - New: validate, copy, sort lexicographically, assign identities.
//   - Len / Dim / At / Instances: read-only accessors.
//
// Design:
//   - The constructor deep-copies every coordinate; callers may reuse or
//     mutate their input slices freely after New returns.
//   - Sorting happens exactly once; the Dataset never changes afterwards,
//     which is what makes identity-based tie-breaking deterministic.
package dataset

import (
	"fmt"
	"math"
	"sort"
)

// Dataset is the full ordered sequence of Instances, sorted by standard
// lexicographic order of their coordinates (first differing coordinate
// decides; fully equal points keep input order). Read-only after New.
type Dataset[L comparable] struct {
	dim       int
	instances []Instance[L]
}

// New builds a Dataset from parallel slices of coordinates and labels.
// The dimension k is inferred from coords[0] and must match across all
// points. All coordinates are copied, so the caller keeps ownership of
// the input slices.
//
// Returns:
//   - ErrEmptyInput when coords is empty,
//   - ErrLengthMismatch when len(coords) != len(labels),
//   - ErrEmptyPoint when coords[0] has no coordinates,
//   - ErrDimensionMismatch (wrapped with the offending index) on ragged input,
//   - ErrNonFinite (wrapped with the offending index) on NaN or ±Inf.
//
// Complexity: O(n·k·log n) time, O(n·k) space.
func New[L comparable](coords [][]float64, labels []L) (*Dataset[L], error) {
	// Stage 1 - shape validation.
	if len(coords) == 0 {
		return nil, ErrEmptyInput
	}
	if len(coords) != len(labels) {
		return nil, fmt.Errorf("%w: %d points, %d labels", ErrLengthMismatch, len(coords), len(labels))
	}
	var dim = len(coords[0])
	if dim == 0 {
		return nil, ErrEmptyPoint
	}

	// Stage 2 - copy and validate every point.
	var (
		n         = len(coords)
		flat      = make([]float64, 0, n*dim) // single backing array for all points
		instances = make([]Instance[L], n)
		i, j      int
		c         float64
	)
	for i = 0; i < n; i++ {
		if len(coords[i]) != dim {
			return nil, fmt.Errorf("%w: point %d has %d coordinates, want %d", ErrDimensionMismatch, i, len(coords[i]), dim)
		}
		for j = 0; j < dim; j++ {
			c = coords[i][j]
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return nil, fmt.Errorf("%w: point %d, coordinate %d", ErrNonFinite, i, j)
			}
			flat = append(flat, c)
		}
		instances[i] = Instance[L]{
			Label: labels[i],
			Point: Point(flat[i*dim : (i+1)*dim : (i+1)*dim]),
		}
	}

	// Stage 3 - canonical order: lexicographic, stable under full equality.
	sort.SliceStable(instances, func(a, b int) bool {
		return lexLess(instances[a].Point, instances[b].Point)
	})

	// Stage 4 - identities follow the sorted order.
	for i = 0; i < n; i++ {
		instances[i].ID = i
	}

	return &Dataset[L]{dim: dim, instances: instances}, nil
}

// lexLess reports whether a precedes b in standard lexicographic order:
// the first differing coordinate decides; fully equal tuples compare false.
func lexLess(a, b Point) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// Len returns the number of instances.
func (d *Dataset[L]) Len() int { return len(d.instances) }

// Dim returns the shared coordinate dimension k.
func (d *Dataset[L]) Dim() int { return d.dim }

// At returns the instance at position i in canonical sorted order.
// Since identities follow that order, At(i).ID == i. The returned value
// shares its Point storage with the Dataset; treat it as read-only.
// Out-of-range i panics, as with any slice index.
func (d *Dataset[L]) At(i int) Instance[L] { return d.instances[i] }

// Instances returns a fresh slice with all instances in canonical order.
// The slice is the caller's to keep; the Points inside still alias
// Dataset storage and must not be mutated.
//
// Complexity: O(n) time and space.
func (d *Dataset[L]) Instances() []Instance[L] {
	out := make([]Instance[L], len(d.instances))
	copy(out, d.instances)
	return out
}
