// Package predicate: shared types and sentinel errors.
//
// NOTE ON NAMING: sentinels are package-prefixed ("predicate: ...") so a
// wrapped chain read via errors.Is/fmt.Errorf("%w") still identifies its
// origin without inspecting stack traces.
package predicate

import "errors"

// Sign is the ternary outcome of an orientation test.
//
// The numeric values are chosen so that Sign doubles as the sign of the
// underlying determinant: multiplying two Signs composes orientations.
type Sign int

const (
	// Negative: the apex lies on the negative side of the oriented base.
	Negative Sign = iota - 1
	// Zero: the simplex is degenerate within tolerance (apex on the base).
	Zero
	// Positive: the apex lies on the positive side of the oriented base.
	Positive
)

// String implements fmt.Stringer for readable logs and test failures.
func (s Sign) String() string {
	switch s {
	case Negative:
		return "Negative"
	case Zero:
		return "Zero"
	case Positive:
		return "Positive"
	default:
		return "Sign(?)"
	}
}

// DefaultEpsilon is the tolerance used when no WithEpsilon option is given.
// Determinant magnitudes below it (and segment slack below it) count as zero.
const DefaultEpsilon = 1e-9

var (
	// ErrOptionViolation indicates an invalid Option passed to New
	// (e.g. a non-positive or non-finite epsilon).
	ErrOptionViolation = errors.New("predicate: invalid option supplied")

	// ErrDimensionMismatch indicates input points of unequal dimension.
	ErrDimensionMismatch = errors.New("predicate: inconsistent point dimension")

	// ErrWindowSize indicates a simplex predicate received a point count
	// other than dimension+1.
	ErrWindowSize = errors.New("predicate: simplex needs dimension+1 points")

	// ErrNonFinite indicates a NaN or infinite input coordinate.
	ErrNonFinite = errors.New("predicate: non-finite coordinate")
)
