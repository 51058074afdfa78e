// Package hull — the assembly driver.
package hull

import (
	"fmt"

	"github.com/JAPNIT/topology-and-meta-learning/dataset"
	"github.com/JAPNIT/topology-and-meta-learning/predicate"
)

// Peel partitions ds into closed, label-homogeneous facet loops by repeated
// gift-wrapping: seed a loop on the earliest unclassified label, advance
// until the walk returns to the loop's first vertex, freeze, and repeat
// until every instance is classified.
//
// The run is single-threaded and fully deterministic: the Dataset's
// canonical order drives every scan, so identical inputs yield identical
// partitions.
//
// Returns:
//   - (partition, nil) with Complete == true on full classification;
//   - (partial partition, error) with Complete == false when the walk hits
//     ErrDataNotSeparable or ErrDegenerateGeometry; loops completed before
//     the failure are retained for diagnostics;
//   - (nil, error) for ErrNilDataset, ErrOptionViolation and
//     ErrDimensionTooSmall, where no work was attempted.
//
// Complexity: bounded by O(n²·k³) orientation work plus the homogeneity
// scans triggered by accepted candidates; memory O(n) beyond the input.
func Peel[L comparable](ds *dataset.Dataset[L], opts ...Option) (*Partition[L], error) {
	// Stage 0 - input and option validation.
	if ds == nil {
		return nil, ErrNilDataset
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if ds.Dim() < 2 {
		return nil, fmt.Errorf("%w: got dimension %d", ErrDimensionTooSmall, ds.Dim())
	}

	// Stage 1 - predicate provider: injected, or built to the configured
	// tolerance.
	prov := o.Provider
	if prov == nil {
		var err error
		if prov, err = predicate.New(predicate.WithEpsilon(o.Epsilon)); err != nil {
			return nil, err
		}
	}

	// Stage 2 - peel loops until the classified set covers the dataset.
	var (
		w    = newWalker(prov, ds)
		part = &Partition[L]{}
	)
	for w.cls.Size() < ds.Len() {
		if err := w.seed(); err != nil {
			return part, err
		}
		for !w.closed() {
			if err := w.advance(); err != nil {
				return part, err
			}
		}
		loop, err := w.freeze()
		if err != nil {
			return part, err
		}
		part.Loops = append(part.Loops, loop)
	}
	part.Complete = true
	return part, nil
}
