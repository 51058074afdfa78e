// Package dataset defines the immutable, canonically ordered point collection
// that every geometric stage of the library operates on, plus the identity
// set used to track classification progress.
//
// What:
//
//   - Point: an ordered tuple of k float64 coordinates.
//   - Instance[L]: a Point paired with a Label and a stable identity.
//   - Dataset[L]: all Instances, sorted once by lexicographic coordinate
//     order (ties keep input order) and read-only afterwards.
//   - ClassifiedSet: an identity-keyed membership set with O(1) average
//     Contains/Add, growing monotonically.
//
// Why:
//
//   - Every downstream decision (seed choice, pivot scan, tie-breaking)
//     is defined in terms of the canonical sorted order, so sorting exactly
//     once up front makes the whole pipeline deterministic.
//   - Identity, not coordinate equality, decides membership: duplicate
//     coordinates (same or different label) stay distinct instances.
//
// Ordering contract:
//
//   - Standard lexicographic compare: the first differing coordinate decides.
//   - Fully equal coordinates keep their relative input order (stable sort).
//   - After sorting, Instance.ID equals the instance's index in the Dataset.
//
// Errors:
//
//   - ErrEmptyInput: no points supplied.
//   - ErrLengthMismatch: len(coords) != len(labels).
//   - ErrEmptyPoint: the first point has zero coordinates.
//   - ErrDimensionMismatch: a point's dimension differs from the first's.
//   - ErrNonFinite: a coordinate is NaN or ±Inf.
//
// Complexity: construction O(n·k·log n); all accessors O(1).
package dataset
