// Package hull — the walker: seeding and pivot advancement.
//
// This file contains the mutable state of one peeling run and the two state
// transitions the driver alternates between:
//   - seed: open a new loop on the earliest unclassified label.
//   - advance: gift-wrap one more vertex onto the open loop.
//
// Design:
//   - The scan cursor is an explicit low-water mark over the canonical
//     order: it only ever moves forward, past the fully classified prefix,
//     so no call rescans instances that can never be candidates again.
//   - Instance ids equal canonical positions (dataset contract), so pivots
//     are stored as plain ints and resolved through Dataset.At.
//   - One shared simplex scratch window is reused for every orientation
//     test; only slice headers are rewritten per window.
package hull

import (
	"fmt"

	"github.com/JAPNIT/topology-and-meta-learning/dataset"
	"github.com/JAPNIT/topology-and-meta-learning/predicate"
)

// walker carries the mutable state of one peeling run.
type walker[L comparable] struct {
	prov *predicate.Provider
	ds   *dataset.Dataset[L]
	cls  *dataset.ClassifiedSet

	k      int   // coordinate dimension
	cursor int   // low-water scan mark over canonical order
	label  L     // label of the loop under construction
	first  int   // id of the open loop's first pivot (closure target)
	pivots []int // ids of the open loop, in walk order

	simplex [][]float64 // scratch window of k+1 point slots
}

// newWalker prepares a run over ds with an empty classified set.
func newWalker[L comparable](prov *predicate.Provider, ds *dataset.Dataset[L]) *walker[L] {
	return &walker[L]{
		prov:    prov,
		ds:      ds,
		cls:     dataset.NewClassifiedSet(ds.Len()),
		k:       ds.Dim(),
		simplex: make([][]float64, ds.Dim()+1),
	}
}

// normalizeCursor advances the cursor past the classified prefix.
// Ids equal canonical positions, so membership is checked by index.
func (w *walker[L]) normalizeCursor() {
	for w.cursor < w.ds.Len() && w.cls.Contains(w.cursor) {
		w.cursor++
	}
}

// seed opens a new loop: the earliest unclassified instance chooses the
// label, then the next k-1 unclassified instances of that label become the
// initial pivots, classified immediately. The caller guarantees at least one
// unclassified instance exists.
//
// Returns ErrDegenerateGeometry (wrapped) when the label runs out of
// instances before k-1 seeds are placed.
func (w *walker[L]) seed() error {
	w.normalizeCursor()

	var (
		n    = w.ds.Len()
		need = w.k - 1
		i    int
		inst dataset.Instance[L]
	)
	w.label = w.ds.At(w.cursor).Label
	w.pivots = w.pivots[:0]

	for i = w.cursor; i < n && len(w.pivots) < need; i++ {
		inst = w.ds.At(i)
		if inst.Label != w.label || w.cls.Contains(inst.ID) {
			continue
		}
		w.pivots = append(w.pivots, inst.ID)
		w.cls.Add(inst.ID)
	}
	if len(w.pivots) < need {
		return fmt.Errorf("%w: found %d of %d seed vertices", ErrDegenerateGeometry, len(w.pivots), need)
	}
	w.first = w.pivots[0]
	return nil
}

// advance performs one gift-wrapping step: among the label's unclassified
// instances (plus the loop's own first vertex once the loop spans a full
// facet), keep the most outward-rotated candidate that still verifies
// homogeneous, then append it to the loop and classify it.
//
// The incumbent starts as the first candidate in canonical order. Every
// later candidate that orients Negative against the trailing ridge replaces
// it, but only if Verify accepts the facet that would result; a candidate
// failing Verify is skipped and the incumbent stands. An incumbent that was
// never vetted this way is verified before it is appended.
//
// Returns ErrDegenerateGeometry when no candidate exists at all, and
// ErrDataNotSeparable when candidates exist but none passes homogeneity.
func (w *walker[L]) advance() error {
	w.normalizeCursor()

	// Stage 1 - candidate pool setup.
	var (
		n      = w.ds.Len()
		ridge  = w.pivots[len(w.pivots)-(w.k-1):] // trailing k-1 pivots
		cur    = -1
		vetted = false
		j      int
		inst   dataset.Instance[L]
	)
	if len(w.pivots) >= w.k {
		// The first vertex re-enters the pool; it precedes every
		// unclassified candidate in canonical order by construction.
		cur = w.first
	}

	// Stage 2 - extremal scan with homogeneity filtering.
	for j = w.cursor; j < n; j++ {
		inst = w.ds.At(j)
		if inst.Label != w.label || w.cls.Contains(inst.ID) {
			continue
		}
		if cur < 0 {
			cur = inst.ID
			continue
		}
		sign, err := w.orient(ridge, cur, inst.ID)
		if err != nil {
			return err
		}
		if sign != predicate.Negative {
			continue // not more extreme than the incumbent
		}
		ok, err := Verify(w.prov, w.ds, w.cls, w.pivots, inst.ID, w.label)
		if err != nil {
			return err
		}
		if !ok {
			continue // extension would break homogeneity; incumbent stands
		}
		cur, vetted = inst.ID, true
	}

	// Stage 3 - accept, or surface the failure mode.
	if cur < 0 {
		return fmt.Errorf("%w: label has no candidate to extend the loop", ErrDegenerateGeometry)
	}
	if !vetted {
		ok, err := Verify(w.prov, w.ds, w.cls, w.pivots, cur, w.label)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: no homogeneous extension from pivot %d", ErrDataNotSeparable, cur)
		}
	}
	w.pivots = append(w.pivots, cur)
	w.cls.Add(cur)
	return nil
}

// orient fills the scratch simplex with ridge ++ [cur, alt] and returns the
// orientation of alt against the incumbent's facet. Negative means alt is
// the more extreme extension.
func (w *walker[L]) orient(ridge []int, cur, alt int) (predicate.Sign, error) {
	var j int
	for j = 0; j < len(ridge); j++ {
		w.simplex[j] = w.ds.At(ridge[j]).Point
	}
	w.simplex[len(ridge)] = w.ds.At(cur).Point
	w.simplex[len(ridge)+1] = w.ds.At(alt).Point
	return w.prov.Orientation(w.simplex)
}

// closed reports whether the open loop has returned to its first vertex.
// The length guard keeps a freshly seeded loop (whose only pivot is the
// first vertex itself) from reading as closed.
func (w *walker[L]) closed() bool {
	return len(w.pivots) > w.k && w.pivots[len(w.pivots)-1] == w.first
}

// freeze materializes the closed loop: vertices resolved from ids, volume
// and enclosure measured while the loop's interior is still unclassified.
func (w *walker[L]) freeze() (Loop[L], error) {
	verts := make([]dataset.Instance[L], len(w.pivots))
	for i, id := range w.pivots {
		verts[i] = w.ds.At(id)
	}
	vol, err := w.loopVolume()
	if err != nil {
		return Loop[L]{}, err
	}
	enc, err := w.countEnclosed()
	if err != nil {
		return Loop[L]{}, err
	}
	return Loop[L]{Label: w.label, Vertices: verts, Volume: vol, Enclosed: enc}, nil
}
