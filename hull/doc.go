// Package hull partitions a labeled k-dimensional point set into closed,
// label-homogeneous facet loops by onion peeling: a generalized gift-wrapping
// walk peels one boundary loop at a time until every instance is classified.
//
// What:
//
//   - Peel: the top-level driver. Seeds a loop from the earliest unclassified
//     instance, walks the pivot advancer until the loop closes on its first
//     vertex, freezes the loop, and repeats until the whole Dataset is
//     classified.
//   - Verify: the homogeneity check. A candidate facet extension is accepted
//     only if every unclassified, differently-labeled instance is provably
//     outside the fence built so far.
//   - Loop / Partition: frozen output. Each Loop is a closed vertex sequence
//     (last entry repeats the first by identity) tagged with its label,
//     plus its swept volume and the number of instances it encloses.
//   - ValidateLoop: structural audit of a single Loop.
//
// Why:
//
//   - A homogeneous loop is a piecewise-linear classification boundary: no
//     differently-labeled point lies strictly inside it, and a point exactly
//     on it is reported as a separability failure instead of being absorbed.
//   - Peeling repeatedly turns one dataset into a sequence of nested
//     boundaries (outermost first), which downstream feature extraction
//     summarizes into dataset-level indicators.
//
// How the walk advances:
//
//	Each step scans the not-yet-classified instances of the loop's label,
//	keeps the most outward-rotated candidate (negative orientation against
//	the trailing k-1 pivots), and accepts it only if Verify clears the
//	facet it would create. Once the loop has k pivots, its first vertex
//	re-enters the candidate pool so the walk can close.
//
// Determinism: the Dataset's canonical lexicographic order drives every scan
// and tie-break, so identical inputs produce identical partitions.
//
// Errors:
//
//   - ErrNilDataset / ErrNilProvider / ErrOptionViolation / ErrDimensionTooSmall:
//     rejected before any work starts.
//   - ErrDataNotSeparable: an other-label instance sits inside or exactly on
//     every candidate facet; the data admits no homogeneous boundary here.
//   - ErrDegenerateGeometry: the remaining instances cannot extend or seed a
//     loop at all (too few, or no non-zero orientation available).
//   - ErrPivotCount: Verify called with too short a pivot sequence.
//
// A Partition returned alongside ErrDataNotSeparable or ErrDegenerateGeometry
// carries the loops completed before the failure and Complete == false.
//
// Complexity: one advance step costs O(n·k³) orientation work in the worst
// case, a loop of v vertices O(v·n·k³), and a full peel is bounded by
// O(n²·k³) plus the homogeneity scans it triggers. Memory beyond the input
// is O(n) for membership plus O(k²) of determinant scratch.
package hull
