// Package metafeature — indicator extraction over a frozen partition.
package metafeature

import (
	"errors"
	"fmt"

	"github.com/JAPNIT/topology-and-meta-learning/hull"
)

var (
	// ErrNilPartition indicates a nil *hull.Partition.
	ErrNilPartition = errors.New("metafeature: partition is nil")

	// ErrEmptyPartition indicates a partition with no loops.
	ErrEmptyPartition = errors.New("metafeature: partition has no loops")

	// ErrIncomplete indicates a partition whose Complete flag is false;
	// partial diagnostics are not summarizable structure.
	ErrIncomplete = errors.New("metafeature: partition is incomplete")

	// ErrMalformedLoop indicates a loop that failed structural validation.
	ErrMalformedLoop = errors.New("metafeature: malformed loop")
)

// Features is the dataset-level indicator vector distilled from a Partition.
type Features struct {
	// NumberOfLoops counts the peeled facet loops.
	NumberOfLoops int

	// MeanSize is the average loop size (distinct vertices plus enclosed
	// instances), i.e. how many instances an average boundary accounts for.
	MeanSize float64

	// SizeVersusNumber relates mean loop size to the loop count: high when
	// few large boundaries cover the data, low when it fragments into many
	// small loops.
	SizeVersusNumber float64

	// VolumeVersusSize is the mean of per-loop volume over size: the
	// geometric space a boundary sweeps per instance it accounts for.
	VolumeVersusSize float64
}

// Extract computes Features from a complete partition.
//
// Every loop is structurally validated first, so hand-assembled partitions
// are held to the same invariants the peeling driver guarantees.
//
// Complexity: O(total loop vertices) time, O(max loop length) space.
func Extract[L comparable](p *hull.Partition[L]) (Features, error) {
	// Stage 1 - reject partitions with nothing trustworthy to measure.
	if p == nil {
		return Features{}, ErrNilPartition
	}
	if !p.Complete {
		return Features{}, ErrIncomplete
	}
	if len(p.Loops) == 0 {
		return Features{}, ErrEmptyPartition
	}

	// Stage 2 - accumulate per-loop size and volume-per-size.
	var (
		sizeSum  float64
		ratioSum float64
		sz       float64
		i        int
	)
	for i = range p.Loops {
		if err := hull.ValidateLoop(p.Loops[i]); err != nil {
			return Features{}, fmt.Errorf("%w: loop %d (%v)", ErrMalformedLoop, i, err)
		}
		sz = float64(p.Loops[i].Size())
		if sz == 0 {
			return Features{}, fmt.Errorf("%w: loop %d has size zero", ErrMalformedLoop, i)
		}
		sizeSum += sz
		ratioSum += p.Loops[i].Volume / sz
	}

	// Stage 3 - reduce to the indicator vector.
	var (
		n    = float64(len(p.Loops))
		mean = sizeSum / n
	)
	return Features{
		NumberOfLoops:    len(p.Loops),
		MeanSize:         mean,
		SizeVersusNumber: mean / n,
		VolumeVersusSize: ratioSum / n,
	}, nil
}
