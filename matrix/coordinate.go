// SPDX-License-Identifier: MIT
//
// File: coordinate.go
// Role: Coordinate storage, mutation (Insert/Remove/AddVertex/RemoveVertex),
//       compaction (Shrink) and read-only queries.
// Determinism:
//   - Entries are kept in insertion order; All/Rows/Cols observe that order.
//   - Undirected Insert stores (r,c) first, then its mirror (c,r).
// Invariants (hold after every exported call):
//   - rows.Len() == cols.Len(); no duplicate pairs; every id < dimension.
//   - undirected: (r,c) stored ⇔ (c,r) stored, for r != c.
//   - index[r] holds exactly the columns stored for row r; empty bitmaps are dropped.

package matrix

import (
	"fmt"
	"iter"
	"math"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/katalvlaran/graphrox/dynarray"
)

// Coordinate is a sparse square boolean matrix in coordinate (COO) form.
// The zero value is not usable; construct with NewCoordinate or FromEntries.
type Coordinate struct {
	dimension uint64 // matrix is dimension×dimension
	directed  bool   // false ⇒ mirrored storage
	loops     int    // stored entries with row == col

	rows *dynarray.Array[uint64] // rows[i] pairs with cols[i]
	cols *dynarray.Array[uint64]

	// index[row] = set of stored columns for that row.
	index map[uint64]*roaring64.Bitmap
}

// NewCoordinate returns an empty 0×0 matrix configured by opts.
// Complexity: O(capacity) allocation.
func NewCoordinate(opts ...Option) *Coordinate {
	o := gatherOptions(opts...)

	return &Coordinate{
		directed: o.directed,
		rows:     dynarray.New[uint64](o.capacity),
		cols:     dynarray.New[uint64](o.capacity),
		index:    make(map[uint64]*roaring64.Bitmap),
	}
}

// FromEntries builds a Coordinate from raw parallel index arrays, validating
// every invariant before anything is allocated into the result.
// rows and cols are copied; storage order is preserved.
//
// Errors:
//   - ErrInvalidEntries: len(rows) != len(cols), an id >= dimension,
//     a duplicate pair, or (undirected) a pair without its mirror.
//
// Complexity: O(n log n) for the index build, n = len(rows).
func FromEntries(directed bool, dimension uint64, rows, cols []uint64) (*Coordinate, error) {
	const method = "FromEntries"
	if len(rows) != len(cols) {
		return nil, fmt.Errorf("%s: %d rows vs %d cols: %w", method, len(rows), len(cols), ErrInvalidEntries)
	}

	c := &Coordinate{
		dimension: dimension,
		directed:  directed,
		rows:      dynarray.New[uint64](len(rows)),
		cols:      dynarray.New[uint64](len(cols)),
		index:     make(map[uint64]*roaring64.Bitmap),
	}
	for i := range rows {
		r, col := rows[i], cols[i]
		if r >= dimension || col >= dimension {
			return nil, fmt.Errorf("%s: entry %d (%d,%d) outside dimension %d: %w",
				method, i, r, col, dimension, ErrInvalidEntries)
		}
		if c.Exists(r, col) {
			return nil, fmt.Errorf("%s: duplicate entry (%d,%d): %w", method, r, col, ErrInvalidEntries)
		}
		c.push(r, col)
	}
	if !directed {
		for i := range rows {
			if !c.Exists(cols[i], rows[i]) {
				return nil, fmt.Errorf("%s: entry (%d,%d) has no mirror: %w",
					method, rows[i], cols[i], ErrInvalidEntries)
			}
		}
	}

	return c, nil
}

// Dimension reports the side length of the square matrix.
func (c *Coordinate) Dimension() uint64 { return c.dimension }

// Directed reports whether the matrix stores one-way entries.
func (c *Coordinate) Directed() bool { return c.directed }

// Len reports the number of stored coordinates. An undirected edge between
// two distinct vertices occupies two coordinates; a self-loop occupies one.
func (c *Coordinate) Len() int { return c.rows.Len() }

// SelfLoops reports the number of stored diagonal entries. O(1).
func (c *Coordinate) SelfLoops() int { return c.loops }

// Entry returns the i-th stored coordinate in storage order.
// Panics if i is out of range.
func (c *Coordinate) Entry(i int) (row, col uint64) {
	return c.rows.At(i), c.cols.At(i)
}

// All iterates stored coordinates in storage order.
// The matrix must not be mutated while iterating.
func (c *Coordinate) All() iter.Seq2[uint64, uint64] {
	return func(yield func(uint64, uint64) bool) {
		rows, cols := c.rows.Values(), c.cols.Values()
		for i := range rows {
			if !yield(rows[i], cols[i]) {
				return
			}
		}
	}
}

// Rows returns a copy of the row-index array.
func (c *Coordinate) Rows() []uint64 { return append([]uint64(nil), c.rows.Values()...) }

// Cols returns a copy of the column-index array.
func (c *Coordinate) Cols() []uint64 { return append([]uint64(nil), c.cols.Values()...) }

// Exists reports whether (r, col) is stored. It never scans the entry arrays.
func (c *Coordinate) Exists(r, col uint64) bool {
	bm, ok := c.index[r]

	return ok && bm.Contains(col)
}

// MaxVertexID is the largest id a Coordinate can store. The dimension is a
// uint64 and must exceed every stored id, so math.MaxUint64 is reserved.
const MaxVertexID = math.MaxUint64 - 1

// Insert stores (r, col), growing the dimension to cover both ids.
// Inserting an existing pair is a no-op. Undirected matrices also store
// (col, r) unless r == col.
//
// Errors:
//   - ErrInvalidArgument if r or col exceeds MaxVertexID. State is unchanged.
//
// Complexity: amortized O(1) plus the bitmap insert.
func (c *Coordinate) Insert(r, col uint64) error {
	if r > MaxVertexID || col > MaxVertexID {
		return matrixErrorf("Insert", fmt.Errorf("(%d,%d): id above %d: %w", r, col, uint64(MaxVertexID), ErrInvalidArgument))
	}
	c.insert(r, col)

	return nil
}

// insert is Insert for ids already known to be at most MaxVertexID.
func (c *Coordinate) insert(r, col uint64) {
	c.insertOne(r, col)
	if !c.directed && r != col {
		c.insertOne(col, r)
	}
}

// insertOne stores a single directed pair if absent and grows the dimension.
func (c *Coordinate) insertOne(r, col uint64) {
	c.Grow(max(r, col) + 1)
	if c.Exists(r, col) {
		return
	}
	c.push(r, col)
}

// push appends (r, col) to the arrays and the index without any checks.
func (c *Coordinate) push(r, col uint64) {
	c.rows.Push(r)
	c.cols.Push(col)
	bm, ok := c.index[r]
	if !ok {
		bm = roaring64.NewBitmap()
		c.index[r] = bm
	}
	bm.Add(col)
	if r == col {
		c.loops++
	}
}

// Grow raises the dimension to at least n. It never lowers it.
func (c *Coordinate) Grow(n uint64) {
	if n > c.dimension {
		c.dimension = n
	}
}

// Remove deletes (r, col), and its mirror in undirected mode when r != col.
// Ids at or beyond the current dimension make Remove a no-op.
// The dimension is never reduced; see Shrink.
//
// Errors:
//   - ErrNotFound if (r, col) is in range but not stored. State is unchanged.
//
// Complexity: O(entries) per call, twice for an undirected pair: the pair
// is located by a linear scan and the gap closed in place. Bulk deletes
// should go through RemoveVertex or a rebuild with FromEntries.
func (c *Coordinate) Remove(r, col uint64) error {
	if r >= c.dimension || col >= c.dimension {
		return nil
	}
	if !c.Exists(r, col) {
		return matrixErrorf("Remove", fmt.Errorf("(%d,%d): %w", r, col, ErrNotFound))
	}
	c.removeOne(r, col)
	if !c.directed && r != col {
		c.removeOne(col, r)
	}

	return nil
}

// removeOne deletes a single stored pair. The caller guarantees presence.
func (c *Coordinate) removeOne(r, col uint64) {
	rows, cols := c.rows.Values(), c.cols.Values()
	// Scan from the tail: recently inserted pairs are removed most often.
	for i := len(rows) - 1; i >= 0; i-- {
		if rows[i] == r && cols[i] == col {
			c.rows.RemoveAt(i)
			c.cols.RemoveAt(i)
			break
		}
	}
	c.unindex(r, col)
}

// unindex drops col from row r's bitmap and the bitmap itself once empty.
func (c *Coordinate) unindex(r, col uint64) {
	bm := c.index[r]
	bm.Remove(col)
	if bm.IsEmpty() {
		delete(c.index, r)
	}
	if r == col {
		c.loops--
	}
}

// AddVertex inserts (id, n) for every n in neighbors and registers id so the
// dimension covers it even when neighbors is empty.
//
// Errors:
//   - ErrInvalidArgument if id or any neighbor exceeds MaxVertexID. Nothing
//     is inserted in that case.
//
// Complexity: amortized O(len(neighbors)).
func (c *Coordinate) AddVertex(id uint64, neighbors ...uint64) error {
	if id > MaxVertexID {
		return matrixErrorf("AddVertex", fmt.Errorf("id %d above %d: %w", id, uint64(MaxVertexID), ErrInvalidArgument))
	}
	for _, n := range neighbors {
		if n > MaxVertexID {
			return matrixErrorf("AddVertex", fmt.Errorf("neighbor %d of %d above %d: %w", n, id, uint64(MaxVertexID), ErrInvalidArgument))
		}
	}
	c.Grow(id + 1)
	for _, n := range neighbors {
		c.insert(id, n)
	}

	return nil
}

// RemoveVertex deletes every entry whose row or column equals id.
// The dimension is unchanged; ids at or beyond it are a no-op.
// Complexity: O(entries) single compaction pass.
func (c *Coordinate) RemoveVertex(id uint64) {
	if id >= c.dimension {
		return
	}
	rows, cols := c.rows.Values(), c.cols.Values()
	keep := make([]bool, len(rows))
	removed := 0
	for i := range rows {
		if rows[i] != id && cols[i] != id {
			keep[i] = true
			continue
		}
		removed++
		if rows[i] != id { // (r, id) lives in another row's bitmap
			c.unindex(rows[i], id)
		}
	}
	if removed == 0 {
		return
	}
	if c.Exists(id, id) {
		c.loops--
	}
	delete(c.index, id)
	c.rows.RetainIndex(func(i int) bool { return keep[i] })
	c.cols.RetainIndex(func(i int) bool { return keep[i] })
}

// MaxReferenced returns the largest id referenced by any stored entry.
// ok is false when the matrix holds no entries. Complexity: O(entries).
func (c *Coordinate) MaxReferenced() (id uint64, ok bool) {
	rows, cols := c.rows.Values(), c.cols.Values()
	for i := range rows {
		id = max(id, rows[i], cols[i])
	}

	return id, len(rows) > 0
}

// Shrink lowers the dimension to (highest referenced id)+1, or 0 when no
// entries remain, and releases spare index capacity.
// Complexity: O(entries).
func (c *Coordinate) Shrink() {
	if id, ok := c.MaxReferenced(); ok {
		c.dimension = id + 1
	} else {
		c.dimension = 0
	}
	c.rows.ShrinkToFit()
	c.cols.ShrinkToFit()
}

// Clone returns a deep copy sharing no storage with c.
// Complexity: O(entries).
func (c *Coordinate) Clone() *Coordinate {
	index := make(map[uint64]*roaring64.Bitmap, len(c.index))
	for r, bm := range c.index {
		index[r] = bm.Clone()
	}

	return &Coordinate{
		dimension: c.dimension,
		directed:  c.directed,
		loops:     c.loops,
		rows:      c.rows.Clone(),
		cols:      c.cols.Clone(),
		index:     index,
	}
}

// Equal reports whether a and b have the same mode, dimension and entry set.
// Storage order is ignored. Complexity: O(entries).
func Equal(a, b *Coordinate) bool {
	if a.directed != b.directed || a.dimension != b.dimension || a.Len() != b.Len() {
		return false
	}
	for r, col := range a.All() {
		if !b.Exists(r, col) {
			return false
		}
	}

	return true
}
