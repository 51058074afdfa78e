package predicate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JAPNIT/topology-and-meta-learning/predicate"
)

// newProvider builds a Provider with default tolerance, failing the test on
// any construction error.
func newProvider(t *testing.T, opts ...predicate.Option) *predicate.Provider {
	t.Helper()
	p, err := predicate.New(opts...)
	require.NoError(t, err, "Provider construction must succeed")
	return p
}

// TestOrientation_CanonicalTurn pins the sign convention on the canonical
// 2-D triple: (0,0),(1,0),(0,1) turns counterclockwise and must be Positive.
func TestOrientation_CanonicalTurn(t *testing.T) {
	p := newProvider(t)

	s, err := p.Orientation([][]float64{{0, 0}, {1, 0}, {0, 1}})
	require.NoError(t, err)
	assert.Equal(t, predicate.Positive, s, "counterclockwise triple must be Positive")
}

// TestOrientation_Antisymmetry verifies that exchanging the two non-origin
// points flips the sign exactly.
func TestOrientation_Antisymmetry(t *testing.T) {
	p := newProvider(t)

	ccw, err := p.Orientation([][]float64{{0, 0}, {1, 0}, {0, 1}})
	require.NoError(t, err)
	cw, err := p.Orientation([][]float64{{0, 0}, {0, 1}, {1, 0}})
	require.NoError(t, err)

	assert.Equal(t, predicate.Positive, ccw)
	assert.Equal(t, predicate.Negative, cw, "swapping the last two points must flip the sign")
}

// TestOrientation_TranslationAndScaleInvariance checks that the sign is
// unchanged when all points share a translation or a positive scale factor.
func TestOrientation_TranslationAndScaleInvariance(t *testing.T) {
	p := newProvider(t)
	base := [][]float64{{0, 0}, {3, 1}, {1, 2}}

	ref, err := p.Orientation(base)
	require.NoError(t, err)
	require.Equal(t, predicate.Positive, ref)

	translated := make([][]float64, len(base))
	scaled := make([][]float64, len(base))
	for i, pt := range base {
		translated[i] = []float64{pt[0] + 100.25, pt[1] - 3.5}
		scaled[i] = []float64{pt[0] * 7, pt[1] * 7}
	}

	s, err := p.Orientation(translated)
	require.NoError(t, err)
	assert.Equal(t, ref, s, "translation must not change orientation")

	s, err = p.Orientation(scaled)
	require.NoError(t, err)
	assert.Equal(t, ref, s, "positive scaling must not change orientation")
}

// TestOrientation_ThreeDimensions exercises the determinant path on a 3-D
// simplex and its mirrored twin.
func TestOrientation_ThreeDimensions(t *testing.T) {
	p := newProvider(t)

	s, err := p.Orientation([][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	require.NoError(t, err)
	assert.Equal(t, predicate.Positive, s, "right-handed tetrahedron must be Positive")

	s, err = p.Orientation([][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, -1}})
	require.NoError(t, err)
	assert.Equal(t, predicate.Negative, s, "mirrored tetrahedron must be Negative")
}

// TestOrientation_ToleranceWindow verifies that determinant magnitudes at or
// below epsilon collapse to Zero, and that WithEpsilon moves that boundary.
func TestOrientation_ToleranceWindow(t *testing.T) {
	flat := [][]float64{{0, 0}, {1, 0}, {0.5, 5e-10}} // |det| = 5e-10

	p := newProvider(t) // default epsilon 1e-9
	s, err := p.Orientation(flat)
	require.NoError(t, err)
	assert.Equal(t, predicate.Zero, s, "sub-epsilon determinant must read Zero")

	strict := newProvider(t, predicate.WithEpsilon(1e-12))
	s, err = strict.Orientation(flat)
	require.NoError(t, err)
	assert.Equal(t, predicate.Positive, s, "tighter epsilon must resolve the same triple as Positive")
}

// TestOrientation_ExactlyCollinear covers the truly singular case.
func TestOrientation_ExactlyCollinear(t *testing.T) {
	p := newProvider(t)

	s, err := p.Orientation([][]float64{{0, 0}, {2, 2}, {5, 5}})
	require.NoError(t, err)
	assert.Equal(t, predicate.Zero, s, "collinear points must read Zero")
}

// TestOrientation_InputValidation checks each malformed-window sentinel.
func TestOrientation_InputValidation(t *testing.T) {
	p := newProvider(t)

	tests := []struct {
		name string
		pts  [][]float64
		want error
	}{
		{"nil window", nil, predicate.ErrWindowSize},
		{"single point", [][]float64{{0, 0}}, predicate.ErrWindowSize},
		{"too few points", [][]float64{{0, 0}, {1, 1}}, predicate.ErrWindowSize},
		{"too many points", [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, predicate.ErrWindowSize},
		{"ragged dimensions", [][]float64{{0, 0}, {1, 0, 0}, {0, 1}}, predicate.ErrDimensionMismatch},
		{"NaN coordinate", [][]float64{{0, 0}, {1, 0}, {math.NaN(), 1}}, predicate.ErrNonFinite},
		{"infinite coordinate", [][]float64{{0, 0}, {math.Inf(-1), 0}, {0, 1}}, predicate.ErrNonFinite},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := p.Orientation(tc.pts)
			assert.ErrorIs(t, err, tc.want, "wrong sentinel for %s", tc.name)
		})
	}
}

// TestOnSegment_ClosedSegment walks the inclusion cases: interior point,
// both endpoints, a point beyond an endpoint, and a point off the line.
func TestOnSegment_ClosedSegment(t *testing.T) {
	p := newProvider(t)
	a, b := []float64{0, 0}, []float64{4, 0}

	tests := []struct {
		name string
		pt   []float64
		want bool
	}{
		{"interior point", []float64{2, 0}, true},
		{"first endpoint", []float64{0, 0}, true},
		{"second endpoint", []float64{4, 0}, true},
		{"beyond endpoint", []float64{5, 0}, false},
		{"off the line", []float64{2, 1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			on, err := p.OnSegment(a, b, tc.pt)
			require.NoError(t, err)
			assert.Equal(t, tc.want, on, "OnSegment(%v)", tc.pt)
		})
	}
}

// TestOnSegment_HigherDimension checks the test is genuinely k-dimensional.
func TestOnSegment_HigherDimension(t *testing.T) {
	p := newProvider(t)
	a, b := []float64{0, 0, 0}, []float64{1, 1, 1}

	on, err := p.OnSegment(a, b, []float64{0.5, 0.5, 0.5})
	require.NoError(t, err)
	assert.True(t, on, "midpoint of a 3-D diagonal lies on the segment")

	on, err = p.OnSegment(a, b, []float64{0.5, 0.5, 0.6})
	require.NoError(t, err)
	assert.False(t, on, "perturbed midpoint lies off the segment")
}

// TestOnSegment_InputValidation checks dimension and finiteness guards.
func TestOnSegment_InputValidation(t *testing.T) {
	p := newProvider(t)

	_, err := p.OnSegment([]float64{0, 0}, []float64{1, 1, 1}, []float64{0, 0})
	assert.ErrorIs(t, err, predicate.ErrDimensionMismatch, "ragged endpoints must error")

	_, err = p.OnSegment([]float64{}, []float64{}, []float64{})
	assert.ErrorIs(t, err, predicate.ErrDimensionMismatch, "empty points must error")

	_, err = p.OnSegment([]float64{0, math.NaN()}, []float64{1, 1}, []float64{0, 0})
	assert.ErrorIs(t, err, predicate.ErrNonFinite, "NaN input must error")
}

// TestSimplexVolume_KnownShapes pins |det|/k! on shapes with hand-computable
// volumes, plus the degenerate zero case.
func TestSimplexVolume_KnownShapes(t *testing.T) {
	p := newProvider(t)

	v, err := p.SimplexVolume([][]float64{{0, 0}, {1, 0}, {0, 1}})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, v, 1e-12, "unit right triangle has area 1/2")

	v, err = p.SimplexVolume([][]float64{{0, 0}, {0, 2}, {2, 0}})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, v, 1e-12, "legs-2 triangle has area 2 regardless of orientation")

	v, err = p.SimplexVolume([][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	require.NoError(t, err)
	assert.InDelta(t, 1.0/6.0, v, 1e-12, "unit corner tetrahedron has volume 1/6")

	v, err = p.SimplexVolume([][]float64{{0, 0}, {1, 1}, {3, 3}})
	require.NoError(t, err)
	assert.Equal(t, 0.0, v, "degenerate simplex has zero volume")
}

// TestNew_OptionValidation ensures invalid epsilons surface
// ErrOptionViolation and valid ones are reported back by Epsilon.
func TestNew_OptionValidation(t *testing.T) {
	for _, eps := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := predicate.New(predicate.WithEpsilon(eps))
		assert.ErrorIs(t, err, predicate.ErrOptionViolation, "epsilon %v must be rejected", eps)
	}

	p, err := predicate.New(predicate.WithEpsilon(1e-3))
	require.NoError(t, err)
	assert.Equal(t, 1e-3, p.Epsilon(), "Epsilon must report the configured tolerance")

	p, err = predicate.New()
	require.NoError(t, err)
	assert.Equal(t, predicate.DefaultEpsilon, p.Epsilon(), "default tolerance must apply")
}

// TestSign_String keeps the Stringer stable for log and failure output.
func TestSign_String(t *testing.T) {
	assert.Equal(t, "Negative", predicate.Negative.String())
	assert.Equal(t, "Zero", predicate.Zero.String())
	assert.Equal(t, "Positive", predicate.Positive.String())
	assert.Equal(t, "Sign(?)", predicate.Sign(5).String())
}
