// Package metafeature condenses a hull Partition into dataset-level
// indicators for meta-learning: scalar summaries of how a labeled point set
// decomposes into homogeneous boundary loops.
//
// What:
//
//   - Features: the indicator vector. Loop count, mean loop size, size
//     relative to loop count, and volume per unit of size.
//   - Extract: compute Features from a complete Partition.
//
// Why:
//
//   - The number and shape of peeled loops describe the topology of a
//     classification problem independently of its dimensionality; datasets
//     can be compared, clustered, or matched to algorithms by these scalars
//     instead of raw geometry.
//
// Errors:
//
//   - ErrNilPartition / ErrEmptyPartition: nothing to summarize.
//   - ErrIncomplete: partial partitions carry failure diagnostics, not
//     trustworthy structure; extraction refuses them.
//   - ErrMalformedLoop: a loop failed structural validation.
//
// Complexity: O(total loop vertices).
package metafeature
