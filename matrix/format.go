// SPDX-License-Identifier: MIT
//
// File: format.go
// Role: human-readable dense renderings for debugging and examples.
// Note: rendering is O(dimension²) by nature; the computations in this
// package never depend on it.

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "

	// DefaultPrecision is the number of decimals BlockMatrix.String prints.
	DefaultPrecision = 2
)

var (
	_ fmt.Stringer = (*Coordinate)(nil)
	_ fmt.Stringer = (*BlockMatrix)(nil)
)

// String renders the adjacency as rows of 0/1 cells, one row per line:
//
//	[0, 1]
//	[1, 0]
//
// An empty (0×0) matrix renders as "".
func (c *Coordinate) String() string {
	var sb strings.Builder
	for r := uint64(0); r < c.dimension; r++ {
		sb.WriteString(_fmtRowOpen)
		bm := c.index[r]
		for col := uint64(0); col < c.dimension; col++ {
			if col > 0 {
				sb.WriteString(_fmtSep)
			}
			if bm != nil && bm.Contains(col) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// String renders the proportions with DefaultPrecision decimals.
func (m *BlockMatrix) String() string { return m.Format(DefaultPrecision) }

// Format renders every block proportion with the given number of decimals.
// A negative precision falls back to the shortest exact representation.
func (m *BlockMatrix) Format(precision int) string {
	var sb strings.Builder
	for br := uint64(0); br < m.dimension; br++ {
		sb.WriteString(_fmtRowOpen)
		for bc := uint64(0); bc < m.dimension; bc++ {
			if bc > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.FormatFloat(m.At(br, bc), 'f', precision, 64))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
