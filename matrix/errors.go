// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." so it greps well in logs.
// Call sites wrap with fmt.Errorf("Method: ...: %w", ErrX); callers match
// with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates that a referenced (row, col) entry is not stored.
	ErrNotFound = errors.New("matrix: entry not found")

	// ErrInvalidArgument indicates a block dimension below 1, a threshold
	// that is NaN or ±Inf, or a vertex id above MaxVertexID.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrInvalidEntries indicates that raw coordinate arrays handed to
	// FromEntries violate a Coordinate invariant (length mismatch, id out of
	// the declared dimension, duplicate pair, missing undirected mirror).
	ErrInvalidEntries = errors.New("matrix: invalid coordinate entries")
)

// matrixErrorf tags err with the public method it surfaced from.
func matrixErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
