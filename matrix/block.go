// SPDX-License-Identifier: MIT
//
// File: block.go
// Role: Occurrence Proportion Matrix (BlockMatrix): block aggregation of a
//       Coordinate and thresholding back into a reduced Coordinate.
// Area rule:
//   - Block (br,bc) covers rows [br·bd, min((br+1)·bd, n)) and the same range
//     for columns, so boundary blocks may be smaller than bd×bd.
//   - Its possible-edge area is h·w minus the diagonal cells inside it plus the
//     self-loops actually stored there: a diagonal cell only counts as a
//     possible edge when a loop occupies it.
//   - Hence 0 ≤ proportion ≤ 1 and Σ proportion·Area == entries.
// Determinism:
//   - Entries() and Threshold() walk blocks in (row, col) ascending order.

package matrix

import (
	"fmt"
	"math"
	"math/bits"
	"slices"
)

// BlockKey addresses one block of a BlockMatrix.
type BlockKey struct {
	Row uint64 // block row
	Col uint64 // block column
}

// BlockEntry is a non-empty block with its raw counts.
type BlockEntry struct {
	Row, Col   uint64
	Count      uint64  // stored coordinates inside the block
	Area       uint64  // possible edges inside the block (see Area rule)
	Proportion float64 // Count / Area
}

// blockCell accumulates counts for one block.
type blockCell struct {
	count uint64
	loops uint64
}

// BlockMatrix is an immutable snapshot of block densities over a Coordinate.
// Zero-density blocks are absent.
type BlockMatrix struct {
	dimension uint64 // ⌈sourceDim / blockDim⌉
	blockDim  uint64
	sourceDim uint64
	cells     map[BlockKey]blockCell
	keys      []BlockKey // sorted (Row, Col) ascending
}

// OccurrenceProportion aggregates c into blocks of side blockDim.
// Each stored entry increments the count of the block it falls in; the
// dense space is never visited.
//
// Errors:
//   - ErrInvalidArgument if blockDim < 1.
//
// Complexity: O(entries + B log B) time, O(B) space, B = non-empty blocks.
func OccurrenceProportion(c *Coordinate, blockDim uint64) (*BlockMatrix, error) {
	if blockDim < 1 {
		return nil, matrixErrorf("OccurrenceProportion",
			fmt.Errorf("block dimension %d < 1: %w", blockDim, ErrInvalidArgument))
	}

	dim := c.dimension / blockDim
	if c.dimension%blockDim != 0 {
		dim++
	}
	bm := &BlockMatrix{
		dimension: dim,
		blockDim:  blockDim,
		sourceDim: c.dimension,
		cells:     make(map[BlockKey]blockCell),
	}
	for r, col := range c.All() {
		key := BlockKey{Row: r / blockDim, Col: col / blockDim}
		cell := bm.cells[key]
		cell.count++
		if r == col {
			cell.loops++
		}
		bm.cells[key] = cell
	}

	bm.keys = make([]BlockKey, 0, len(bm.cells))
	for key := range bm.cells {
		bm.keys = append(bm.keys, key)
	}
	slices.SortFunc(bm.keys, compareKeys)

	return bm, nil
}

func compareKeys(a, b BlockKey) int {
	switch {
	case a.Row < b.Row:
		return -1
	case a.Row > b.Row:
		return 1
	case a.Col < b.Col:
		return -1
	case a.Col > b.Col:
		return 1
	default:
		return 0
	}
}

// Dimension reports the number of blocks along one side.
func (m *BlockMatrix) Dimension() uint64 { return m.dimension }

// BlockDimension reports the block side length used for aggregation.
func (m *BlockMatrix) BlockDimension() uint64 { return m.blockDim }

// SourceDimension reports the dimension of the aggregated Coordinate.
func (m *BlockMatrix) SourceDimension() uint64 { return m.sourceDim }

// Len reports the number of non-empty blocks.
func (m *BlockMatrix) Len() int { return len(m.keys) }

// side returns the extent of block b along one axis (0 outside the matrix).
func (m *BlockMatrix) side(b uint64) uint64 {
	if b >= m.dimension {
		return 0
	}
	start := b * m.blockDim

	return min(m.blockDim, m.sourceDim-start)
}

// Count reports the stored coordinates inside block (br, bc).
func (m *BlockMatrix) Count(br, bc uint64) uint64 { return m.cells[BlockKey{br, bc}].count }

// Area reports the number of possible edges inside block (br, bc) under the
// area rule in the file banner. It saturates at math.MaxUint64.
func (m *BlockMatrix) Area(br, bc uint64) uint64 {
	h, w := m.side(br), m.side(bc)
	hi, area := bits.Mul64(h, w)
	if hi != 0 {
		return math.MaxUint64
	}
	if br == bc {
		area = area - h + m.cells[BlockKey{br, bc}].loops
	}

	return area
}

// At returns the occurrence proportion of block (br, bc); 0 when empty or
// out of range.
func (m *BlockMatrix) At(br, bc uint64) float64 {
	cell, ok := m.cells[BlockKey{br, bc}]
	if !ok || cell.count == 0 {
		return 0
	}

	return float64(cell.count) / m.areaFloat(br, bc, cell)
}

// areaFloat is Area computed in float64 so that huge blocks keep precision
// for the ratio instead of saturating.
func (m *BlockMatrix) areaFloat(br, bc uint64, cell blockCell) float64 {
	h, w := float64(m.side(br)), float64(m.side(bc))
	area := h * w
	if br == bc {
		area = area - h + float64(cell.loops)
	}

	return area
}

// Entries returns every non-empty block sorted by (Row, Col).
func (m *BlockMatrix) Entries() []BlockEntry {
	out := make([]BlockEntry, 0, len(m.keys))
	for _, key := range m.keys {
		cell := m.cells[key]
		out = append(out, BlockEntry{
			Row:        key.Row,
			Col:        key.Col,
			Count:      cell.count,
			Area:       m.Area(key.Row, key.Col),
			Proportion: float64(cell.count) / m.areaFloat(key.Row, key.Col, cell),
		})
	}

	return out
}

// Threshold discretizes the matrix into a Coordinate of side Dimension():
// block-edge (br, bc) is stored iff At(br, bc) > threshold.
//
// Rules:
//   - threshold ≥ 1 ⇒ no entries (proportions never exceed 1).
//   - threshold ≤ 0 ⇒ every cell of the reduced space, diagonal included.
//   - directed selects the storage mode of the result; an undirected result
//     of an undirected source stays consistent because its block matrix is
//     symmetric.
//
// Errors:
//   - ErrInvalidArgument if threshold is NaN or ±Inf.
//
// Complexity: O(B log B); O(Dimension()²) when threshold ≤ 0.
func (m *BlockMatrix) Threshold(threshold float64, directed bool) (*Coordinate, error) {
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return nil, matrixErrorf("Threshold",
			fmt.Errorf("threshold %v is not finite: %w", threshold, ErrInvalidArgument))
	}

	out := NewCoordinate(WithDirected(directed))
	out.Grow(m.dimension)
	switch {
	case threshold >= 1:
		// Nothing can clear the bar.
	case threshold <= 0:
		for br := uint64(0); br < m.dimension; br++ {
			for bc := uint64(0); bc < m.dimension; bc++ {
				out.insert(br, bc)
			}
		}
	default:
		for _, key := range m.keys {
			if m.At(key.Row, key.Col) > threshold {
				out.insert(key.Row, key.Col)
			}
		}
	}

	return out, nil
}
