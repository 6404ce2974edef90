// SPDX-License-Identifier: MIT

// Package dynarray provides Array, a growable owned sequence with amortized
// O(1) append and explicit compaction.
//
// Array backs the parallel row/column index storage of matrix.Coordinate.
// It keeps the growth policy explicit (capacity doubles from a small floor)
// and exposes the two compaction primitives the coordinate matrix relies on:
// order-preserving removal and single-pass Retain.
//
// Concurrency:
//
//	Array is not safe for concurrent mutation. Callers own it exclusively.
//
// Complexity quicksheet:
//   - Push/PushMany: amortized O(1) per element.
//   - At/Set/Len/Cap: O(1).
//   - RemoveAt: O(n-i). Retain/RetainIndex: O(n).
//   - ShrinkToFit/Clone: O(n).
package dynarray
