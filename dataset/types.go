// Package dataset: core value types and the sentinel error set.
package dataset

import "errors"

// Sentinel errors for dataset construction. All are returned wrapped with
// positional context; match with errors.Is.
var (
	// ErrEmptyInput is returned when no points are supplied.
	ErrEmptyInput = errors.New("dataset: empty input")

	// ErrLengthMismatch is returned when coords and labels differ in length.
	ErrLengthMismatch = errors.New("dataset: coords and labels length mismatch")

	// ErrEmptyPoint is returned when the first point has no coordinates.
	ErrEmptyPoint = errors.New("dataset: point has zero coordinates")

	// ErrDimensionMismatch is returned when a point's dimension differs
	// from the dimension inferred from the first point.
	ErrDimensionMismatch = errors.New("dataset: inconsistent point dimension")

	// ErrNonFinite is returned when a coordinate is NaN or ±Inf.
	ErrNonFinite = errors.New("dataset: non-finite coordinate")
)

// Point is an ordered tuple of k real coordinates. Points handed out by a
// Dataset alias its internal storage and must be treated as read-only.
type Point []float64

// Instance pairs a Point with a Label and a stable identity. ID is the
// instance's position in the canonical sorted order of its Dataset, so for
// any Dataset d and index i, d.At(i).ID == i. Identity, not coordinate
// equality, determines membership everywhere in this library.
type Instance[L comparable] struct {
	// ID is the stable identity: the index in canonical sorted order.
	ID int

	// Label is the class tag carried by the point. Opaque to geometry.
	Label L

	// Point holds the k coordinates, aliasing Dataset storage (read-only).
	Point Point
}
