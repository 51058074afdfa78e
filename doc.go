// Package topometa turns labeled point clouds into topological structure:
// it peels k-dimensional datasets into closed, label-homogeneous boundary
// loops and condenses those loops into meta-learning indicators.
//
// 🚀 What is topometa?
//
//	A deterministic, batch, in-memory pipeline built from small packages:
//		• dataset/     — canonical ordering, identities, classification tracking
//		• predicate/   — tolerance-aware orientation, segment and volume tests
//		• hull/        — onion peeling: gift-wrapped homogeneous facet loops
//		• metafeature/ — dataset-level indicators distilled from the loops
//
// ✨ Why choose topometa?
//
//   - Deterministic – canonical lexicographic order drives every scan and
//     tie-break; identical inputs always yield identical partitions
//   - Dimension-generic – the same walk covers 2-D polygons and k-D facets,
//     with determinants delegated to gonum
//   - Label-aware – loops never absorb foreign points silently; boundary
//     contact surfaces as an explicit separability error
//   - Honest failures – partial partitions accompany errors, clearly marked
//     incomplete, never silently truncated
//
// The pipeline in three calls:
//
//	ds, err := dataset.New(coords, labels)   // validate, sort, identify
//	part, err := hull.Peel(ds)               // peel homogeneous loops
//	f, err := metafeature.Extract(part)      // summarize the topology
//
// Quick ASCII intuition (one label, two peels):
//
//	    ●───────●
//	    │  ●─●  │      outer square = loop 1
//	    │       │      inner pair   = loop 2
//	    ●───────●
//
// Dive into the package docs for the invariants each layer guarantees and
// the examples/ directory for runnable scenarios.
//
//	go get github.com/JAPNIT/topology-and-meta-learning
package topometa
