// Package hull: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the hull
// package. All operations return these sentinels (wrapped with context where
// useful) and tests match them via errors.Is.

package hull

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "hull: ..." so a wrapped chain still names
// its origin. Wrap with fmt.Errorf("%w: ctx", ErrX) where positional context
// helps; callers keep matching via errors.Is.
//
// ERROR PRIORITY (enforced in Peel):
// nil inputs -> option violations -> dimension check -> runtime failures
// (separability, degeneracy).

var (
	// ErrNilDataset indicates a nil *dataset.Dataset was passed in.
	ErrNilDataset = errors.New("hull: dataset is nil")

	// ErrNilProvider indicates a nil *predicate.Provider where one is required.
	ErrNilProvider = errors.New("hull: predicate provider is nil")

	// ErrOptionViolation indicates an invalid Option passed to Peel.
	ErrOptionViolation = errors.New("hull: invalid option supplied")

	// ErrDimensionTooSmall rejects datasets of dimension < 2; facet loops
	// need at least a plane to bound anything.
	ErrDimensionTooSmall = errors.New("hull: dimension must be at least 2")

	// ErrPivotCount is returned by Verify when the pivot sequence plus the
	// candidate cannot form even one window of k vertices.
	ErrPivotCount = errors.New("hull: too few pivots for a facet window")

	// ErrDataNotSeparable signals a structural homogeneity failure: some
	// differently-labeled instance lies inside or exactly on every facet
	// the walk could build. Not transient; a fact about the input.
	ErrDataNotSeparable = errors.New("hull: data is not separable by homogeneous facets")

	// ErrDegenerateGeometry signals that the remaining instances cannot
	// seed or extend a loop (too few of the label left, or no candidate
	// yields progress).
	ErrDegenerateGeometry = errors.New("hull: degenerate geometry prevents progress")

	// ErrOpenLoop marks a loop whose last vertex identity differs from its
	// first; closed loops repeat their first vertex at the end.
	ErrOpenLoop = errors.New("hull: loop is not closed")

	// ErrLoopTooShort marks a loop with fewer than dimension+1 stored
	// vertices (k distinct plus the closing repeat).
	ErrLoopTooShort = errors.New("hull: loop has too few vertices")

	// ErrLoopDuplicate marks a loop that revisits an identity before the
	// closing vertex.
	ErrLoopDuplicate = errors.New("hull: duplicate vertex inside loop")

	// ErrLoopLabelMixed marks a loop carrying a vertex whose label differs
	// from the loop's label.
	ErrLoopLabelMixed = errors.New("hull: loop vertices carry mixed labels")
)
