// SPDX-License-Identifier: MIT

// Package matrix implements the sparse adjacency storage of graphrox and the
// block-level derivations computed from it.
//
// What & Why:
//
//	Coordinate is a square boolean-edge matrix stored as two parallel index
//	arrays (rows[i], cols[i]) plus a dimension. It is the only adjacency
//	representation in the module and never materializes the dense space.
//	A per-row roaring bitmap indexes the stored columns so Exists is a
//	bitmap probe instead of a scan.
//
//	BlockMatrix (the Occurrence Proportion Matrix) partitions the
//	dimension×dimension space into ⌈dimension/blockDim⌉² square blocks and
//	records, per non-empty block, how many stored edges fall inside it.
//	Threshold collapses it back into a smaller Coordinate.
//
// Policy:
//   - Undirected mode mirrors (r,c) into (c,r), except on the diagonal.
//   - Dimension only grows on insert; Shrink is the explicit compaction step.
//   - Insert is idempotent; Remove of an absent in-range entry is ErrNotFound;
//     Remove/RemoveVertex beyond the dimension is a silent no-op.
//   - Every error is a sentinel from errors.go, wrapped with call-site context.
//
// Concurrency:
//
//	Nothing in this package is safe for concurrent mutation. A BlockMatrix is
//	an immutable snapshot and may be read from any goroutine once built.
//
// Complexity quicksheet:
//   - Exists: O(log k) within the row bitmap; Insert: amortized O(1) + index.
//   - Remove: O(entries) (order-preserving memmove); RemoveVertex/Shrink: O(entries).
//   - OccurrenceProportion: O(entries + B log B), B = non-empty blocks.
//   - Threshold: O(B log B), or O(d²) for the fully dense case.
package matrix
