// Package predicate: Provider construction and the predicate set itself.
//
// All determinant work is delegated to gonum (mat.LogDet over the matrix of
// edge vectors), keeping magnitudes in log space until the final comparison
// against epsilon.
package predicate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Provider evaluates geometric predicates under one shared tolerance.
//
// A Provider is immutable after New and safe for concurrent use.
type Provider struct {
	eps    float64 // tolerance on determinant magnitude and segment slack
	logEps float64 // math.Log(eps), compared against mat.LogDet output
}

// New builds a Provider from functional options.
//
// Returns ErrOptionViolation if any option recorded an invalid value.
func New(opts ...Option) (*Provider, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Provider{eps: o.Epsilon, logEps: math.Log(o.Epsilon)}, nil
}

// Epsilon reports the tolerance this Provider was built with.
func (p *Provider) Epsilon() float64 { return p.eps }

// Orientation classifies the simplex pts on one side of its base.
//
// pts must hold exactly k+1 points of dimension k: pts[0..k-1] form the
// ordered base, pts[k] is the apex. The result is the sign of
//
//	det[ pts[1]-pts[0], pts[2]-pts[0], ..., pts[k]-pts[0] ]
//
// with magnitudes at or below epsilon reported as Zero. In two dimensions
// this is the usual turn test: Orientation((0,0),(1,0),(0,1)) is Positive
// (counterclockwise), and swapping the last two points flips the sign.
//
// Complexity: O(k³).
func (p *Provider) Orientation(pts [][]float64) (Sign, error) {
	k, err := simplexDim(pts)
	if err != nil {
		return Zero, err
	}
	ld, sign := p.edgeLogDet(pts, k)
	switch {
	case sign == 0 || ld <= p.logEps:
		return Zero, nil
	case sign < 0:
		return Negative, nil
	default:
		return Positive, nil
	}
}

// OnSegment reports whether pt lies on the closed segment [a, b],
// endpoints included. Collinearity and betweenness are absorbed into one
// triangle-inequality test: d(a,pt) + d(pt,b) exceeds d(a,b) by at most
// epsilon only for points on the segment.
//
// Complexity: O(k).
func (p *Provider) OnSegment(a, b, pt []float64) (bool, error) {
	if len(pt) == 0 {
		return false, fmt.Errorf("%w: empty point", ErrDimensionMismatch)
	}
	if len(a) != len(pt) || len(b) != len(pt) {
		return false, fmt.Errorf("%w: endpoints %d/%d versus point %d",
			ErrDimensionMismatch, len(a), len(b), len(pt))
	}
	for _, s := range [][]float64{a, b, pt} {
		if !finite(s) {
			return false, fmt.Errorf("%w: segment input", ErrNonFinite)
		}
	}
	detour := floats.Distance(a, pt, 2) + floats.Distance(pt, b, 2) - floats.Distance(a, b, 2)
	return detour <= p.eps, nil
}

// SimplexVolume returns the (unsigned) volume of the k-simplex pts,
// |det|/k! over the same edge-vector matrix Orientation uses.
// Degenerate simplices yield 0.
//
// Complexity: O(k³).
func (p *Provider) SimplexVolume(pts [][]float64) (float64, error) {
	k, err := simplexDim(pts)
	if err != nil {
		return 0, err
	}
	ld, _ := p.edgeLogDet(pts, k)
	fact := 1.0
	for i := 2; i <= k; i++ {
		fact *= float64(i)
	}
	// exp(-Inf) == 0, so a singular matrix falls out as zero volume.
	return math.Exp(ld) / fact, nil
}

// edgeLogDet builds the k×k matrix of edge vectors pts[i]-pts[0] and
// returns its log-determinant and sign via gonum.
func (p *Provider) edgeLogDet(pts [][]float64, k int) (ld, sign float64) {
	flat := make([]float64, k*k)
	for i := 1; i <= k; i++ {
		row := flat[(i-1)*k : i*k]
		for j := 0; j < k; j++ {
			row[j] = pts[i][j] - pts[0][j]
		}
	}
	return mat.LogDet(mat.NewDense(k, k, flat))
}

// simplexDim validates a k+1 point window and returns k.
func simplexDim(pts [][]float64) (int, error) {
	if len(pts) < 2 {
		return 0, fmt.Errorf("%w: got %d point(s)", ErrWindowSize, len(pts))
	}
	k := len(pts[0])
	if len(pts) != k+1 {
		return 0, fmt.Errorf("%w: got %d points for dimension %d", ErrWindowSize, len(pts), k)
	}
	for i, pt := range pts {
		if len(pt) != k {
			return 0, fmt.Errorf("%w: point %d has dimension %d, want %d",
				ErrDimensionMismatch, i, len(pt), k)
		}
		if !finite(pt) {
			return 0, fmt.Errorf("%w: point %d", ErrNonFinite, i)
		}
	}
	return k, nil
}

// finite reports whether every coordinate is a finite number.
func finite(pt []float64) bool {
	for _, c := range pt {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
