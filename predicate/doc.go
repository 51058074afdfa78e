// Package predicate provides the tolerance-aware geometric predicates that
// the hull peeling algorithm consumes: simplex orientation, closed-segment
// containment, and simplex volume, all in a shared k-dimensional coordinate
// space.
//
// What:
//
//   - Provider: an immutable predicate evaluator carrying the numeric policy
//     (epsilon). Build once with New, share freely; it holds no mutable state
//     and is safe for concurrent use.
//   - Orientation: sign of the determinant of a simplex's edge vectors,
//     telling which side of a hyperplane the last point lies on.
//   - OnSegment: whether a point lies on the closed segment between two
//     endpoints, inclusive.
//   - SimplexVolume: |det|/k! of a k-simplex, for loop volume accounting.
//
// Why:
//
//   - Exact float comparison is meaningless after a determinant; every
//     predicate here absorbs floating-point error through one epsilon so the
//     whole pipeline shares a single numeric policy.
//   - Determinants are delegated to gonum's mat.LogDet (log-magnitude plus
//     sign, the numerically stable form); this package never hand-rolls
//     linear algebra.
//
// Contracts (Orientation):
//
//   - antisymmetric under the swap of any two non-origin points,
//   - invariant under translation of all inputs by a common vector,
//   - sign preserved under positive scaling of all inputs.
//
// Errors:
//
//   - ErrOptionViolation: invalid Option supplied to New.
//   - ErrDimensionMismatch: input points disagree on dimension.
//   - ErrWindowSize: a simplex predicate did not receive exactly k+1 points.
//   - ErrNonFinite: an input coordinate is NaN or ±Inf.
//
// Complexity: Orientation and SimplexVolume are O(k³) (LU); OnSegment is O(k).
package predicate
