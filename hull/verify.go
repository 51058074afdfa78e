// Package hull — homogeneity verification.
//
// This file contains the facet homogeneity check and the window-scan
// primitive it shares with loop measurement:
//   - Verify: public check that a candidate facet extension keeps every
//     unclassified, differently-labeled instance outside.
//   - apexClearance: classify one instance against the sliding facet
//     windows of a pivot sequence.
//
// Design:
//   - Windows are index-based slices over the pivot sequence; no per-window
//     copies of coordinates are made, only slice headers move.
//   - The scan short-circuits on the first decisive window per apex.
package hull

import (
	"fmt"

	"github.com/JAPNIT/topology-and-meta-learning/dataset"
	"github.com/JAPNIT/topology-and-meta-learning/predicate"
)

// clearance is the verdict for one apex against one facet fence.
type clearance int

const (
	// cleared: some window proved the apex safely outside.
	cleared clearance = iota
	// enclosed: every window kept the apex on the inner side.
	enclosed
	// onBoundary: the apex sits exactly on a window's closing edge.
	onBoundary
)

// Verify reports whether extending pivots by candidate keeps the facet
// homogeneous for label: every instance that is unclassified and carries a
// different label must be provably outside the fence pivots ++ [candidate].
//
// For each such instance, a window of k vertices slides over the fence and
// the instance is tested as the simplex apex:
//
//   - Negative orientation: the instance is outside for this window; cleared.
//   - Zero orientation: the instance is coplanar; if it also lies on the
//     window's closing edge, the check fails immediately (an other-label
//     point sits exactly on the boundary), otherwise it is cleared.
//   - Positive orientation on every window: the instance is enclosed by the
//     candidate facet; the check fails.
//
// A nil classified set is treated as empty (nothing classified yet), which
// makes Verify usable on its own, without running the full driver. Pivot and
// candidate ids must index ds; out-of-range ids panic as slice indexes do.
//
// Returns ErrNilProvider / ErrNilDataset on nil collaborators and
// ErrPivotCount when pivots plus the candidate cannot fill one window.
//
// Complexity: O(n·w·k³) with w facet windows, short-circuiting per apex.
func Verify[L comparable](
	prov *predicate.Provider,
	ds *dataset.Dataset[L],
	cls *dataset.ClassifiedSet,
	pivots []int,
	candidate int,
	label L,
) (bool, error) {
	// Stage 1 - collaborator and window-size guards.
	if prov == nil {
		return false, ErrNilProvider
	}
	if ds == nil {
		return false, ErrNilDataset
	}
	var k = ds.Dim()
	if len(pivots)+1 < k {
		return false, fmt.Errorf("%w: %d pivots plus a candidate, dimension %d", ErrPivotCount, len(pivots), k)
	}

	// Stage 2 - assemble the fence under test.
	var (
		seq     = make([]int, 0, len(pivots)+1)
		simplex = make([][]float64, k+1)
		i       int
		inst    dataset.Instance[L]
	)
	seq = append(seq, pivots...)
	seq = append(seq, candidate)

	// Stage 3 - clear every unclassified, differently-labeled instance.
	for i = 0; i < ds.Len(); i++ {
		inst = ds.At(i)
		if inst.Label == label {
			continue // same-label instances cannot violate homogeneity
		}
		if cls != nil && cls.Contains(inst.ID) {
			continue // already part of an earlier loop
		}
		verdict, err := apexClearance(prov, ds, seq, inst.ID, simplex, true)
		if err != nil {
			return false, err
		}
		if verdict != cleared {
			return false, nil
		}
	}
	return true, nil
}

// apexClearance slides a k-vertex window over seq and classifies the apex
// instance against each window simplex. With failOnBoundary, an apex lying
// exactly on a window's closing edge returns onBoundary at once; otherwise a
// boundary touch merely fails to clear and the scan continues.
func apexClearance[L comparable](
	prov *predicate.Provider,
	ds *dataset.Dataset[L],
	seq []int,
	apex int,
	simplex [][]float64,
	failOnBoundary bool,
) (clearance, error) {
	var (
		k      = ds.Dim()
		apexPt = ds.At(apex).Point
		w, j   int
	)
	for w = 0; w+k <= len(seq); w++ {
		for j = 0; j < k; j++ {
			simplex[j] = ds.At(seq[w+j]).Point
		}
		simplex[k] = apexPt

		sign, err := prov.Orientation(simplex)
		if err != nil {
			return enclosed, err
		}
		switch sign {
		case predicate.Negative:
			return cleared, nil
		case predicate.Zero:
			on, err := prov.OnSegment(ds.At(seq[w+k-2]).Point, ds.At(seq[w+k-1]).Point, apexPt)
			if err != nil {
				return enclosed, err
			}
			if on {
				if failOnBoundary {
					return onBoundary, nil
				}
				continue // touches this window's edge; a later window may still clear it
			}
			return cleared, nil
		}
	}
	return enclosed, nil
}
