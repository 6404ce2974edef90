// SPDX-License-Identifier: MIT
// Package matrix_test verifies Coordinate storage contracts.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/graphrox/matrix"
	"github.com/stretchr/testify/require"
)

// TestInsertUndirectedMirror checks mirrored storage and diagonal handling.
func TestInsertUndirectedMirror(t *testing.T) {
	c := matrix.NewCoordinate()
	c.Insert(4, 3)
	c.Insert(5, 5)

	require.True(t, c.Exists(3, 4))  // mirror stored
	require.True(t, c.Exists(4, 3))  // original stored
	require.False(t, c.Exists(4, 5)) // never inserted
	require.True(t, c.Exists(5, 5))  // self-loop stored once
	require.Equal(t, 3, c.Len())
	require.Equal(t, 1, c.SelfLoops())
	require.Equal(t, uint64(6), c.Dimension())
}

func TestInsertDirectedNoMirror(t *testing.T) {
	c := matrix.NewCoordinate(matrix.WithDirected(true))
	c.Insert(1, 2)

	require.True(t, c.Directed())
	require.True(t, c.Exists(1, 2))
	require.False(t, c.Exists(2, 1))
	require.Equal(t, 1, c.Len())
}

// TestInsertIdempotent verifies a double insert equals a single insert.
func TestInsertIdempotent(t *testing.T) {
	c := matrix.NewCoordinate()
	c.Insert(0, 1)
	once := c.Clone()
	c.Insert(0, 1)
	c.Insert(1, 0) // the mirror is the same undirected edge

	require.True(t, matrix.Equal(once, c))
	require.Equal(t, []uint64{0, 1}, c.Rows())
	require.Equal(t, []uint64{1, 0}, c.Cols())
}

func TestRemove(t *testing.T) {
	c := matrix.NewCoordinate()
	c.Insert(0, 1)
	c.Insert(1, 2)

	require.NoError(t, c.Remove(2, 1)) // removing via the mirror removes both
	require.False(t, c.Exists(1, 2))
	require.False(t, c.Exists(2, 1))
	require.True(t, c.Exists(0, 1))
	require.Equal(t, uint64(3), c.Dimension()) // never shrinks on remove
	require.Equal(t, []uint64{0, 1}, c.Rows()) // order of survivors preserved
}

// TestRemoveAbsent verifies NotFound and that state is untouched.
func TestRemoveAbsent(t *testing.T) {
	c := matrix.NewCoordinate()
	c.Insert(0, 1)
	before := c.Clone()

	err := c.Remove(0, 0)
	require.ErrorIs(t, err, matrix.ErrNotFound)
	require.True(t, matrix.Equal(before, c))
	require.Equal(t, before.Rows(), c.Rows())
}

// TestRemoveBeyondDimension is a silent no-op.
func TestRemoveBeyondDimension(t *testing.T) {
	c := matrix.NewCoordinate()
	c.Insert(0, 1)

	require.NoError(t, c.Remove(7, 0))
	require.NoError(t, c.Remove(0, 7))
	require.Equal(t, 2, c.Len())
}

func TestRemoveSelfLoop(t *testing.T) {
	c := matrix.NewCoordinate()
	c.Insert(2, 2)
	require.NoError(t, c.Remove(2, 2))
	require.Equal(t, 0, c.Len())
	require.Equal(t, 0, c.SelfLoops())
}

func TestAddVertexRegistersID(t *testing.T) {
	c := matrix.NewCoordinate()
	c.AddVertex(8)
	require.Equal(t, uint64(9), c.Dimension())
	require.Equal(t, 0, c.Len())

	c.AddVertex(2, 1, 6)
	require.True(t, c.Exists(2, 1))
	require.True(t, c.Exists(6, 2))
	require.Equal(t, uint64(9), c.Dimension())
}

// TestInsertRejectsTopID keeps every stored id below the dimension: the
// largest uint64 would need dimension 2^64.
func TestInsertRejectsTopID(t *testing.T) {
	for _, directed := range []bool{true, false} {
		c := matrix.NewCoordinate(matrix.WithDirected(directed))
		require.ErrorIs(t, c.Insert(math.MaxUint64, 0), matrix.ErrInvalidArgument)
		require.ErrorIs(t, c.Insert(0, math.MaxUint64), matrix.ErrInvalidArgument)
		require.Zero(t, c.Len())
		require.Zero(t, c.Dimension())
		require.False(t, c.Exists(math.MaxUint64, 0))

		require.NoError(t, c.Insert(matrix.MaxVertexID, 0))
		require.Equal(t, uint64(math.MaxUint64), c.Dimension())
		require.True(t, c.Exists(matrix.MaxVertexID, 0))
		require.NoError(t, c.Remove(matrix.MaxVertexID, 0))
		require.False(t, c.Exists(matrix.MaxVertexID, 0))
		require.Zero(t, c.Len())
	}
}

// TestAddVertexRejectsTopID checks AddVertex is all-or-nothing on bad ids.
func TestAddVertexRejectsTopID(t *testing.T) {
	c := matrix.NewCoordinate()
	require.ErrorIs(t, c.AddVertex(math.MaxUint64), matrix.ErrInvalidArgument)
	require.ErrorIs(t, c.AddVertex(1, 2, math.MaxUint64), matrix.ErrInvalidArgument)
	require.Zero(t, c.Dimension())
	require.Zero(t, c.Len())

	require.NoError(t, c.AddVertex(matrix.MaxVertexID))
	require.Equal(t, uint64(math.MaxUint64), c.Dimension())
}

// TestRemoveVertexThenShrink follows the add/remove/shrink example.
func TestRemoveVertexThenShrink(t *testing.T) {
	c := matrix.NewCoordinate()
	c.Insert(4, 3)
	c.Insert(5, 5)
	c.AddVertex(2, 1, 6, 7, 3, 0)
	require.Equal(t, uint64(8), c.Dimension())

	c.RemoveVertex(2)
	for _, n := range []uint64{1, 6, 7, 3, 0} {
		require.False(t, c.Exists(2, n))
		require.False(t, c.Exists(n, 2))
	}
	require.True(t, c.Exists(3, 4))
	require.Equal(t, uint64(8), c.Dimension()) // unchanged until Shrink

	c.Shrink()
	require.Equal(t, uint64(6), c.Dimension()) // 1 + max remaining id (5)
	require.Equal(t, 3, c.Len())
}

func TestRemoveVertexWithLoop(t *testing.T) {
	c := matrix.NewCoordinate(matrix.WithDirected(true))
	c.Insert(1, 1)
	c.Insert(1, 0)
	c.Insert(0, 1)
	c.Insert(0, 0)

	c.RemoveVertex(1)
	require.Equal(t, 1, c.Len())
	require.Equal(t, 1, c.SelfLoops())
	require.True(t, c.Exists(0, 0))

	c.RemoveVertex(42) // beyond dimension
	require.Equal(t, 1, c.Len())
}

func TestShrinkEmpty(t *testing.T) {
	c := matrix.NewCoordinate()
	c.Insert(3, 4)
	require.NoError(t, c.Remove(3, 4))
	c.Shrink()
	require.Equal(t, uint64(0), c.Dimension())

	_, ok := c.MaxReferenced()
	require.False(t, ok)
}

func TestCloneIndependence(t *testing.T) {
	c := matrix.NewCoordinate()
	c.Insert(0, 1)
	d := c.Clone()
	d.Insert(2, 3)
	require.NoError(t, d.Remove(0, 1))

	require.True(t, c.Exists(0, 1))
	require.False(t, c.Exists(2, 3))
	require.Equal(t, uint64(2), c.Dimension())
}

func TestFromEntries(t *testing.T) {
	c, err := matrix.FromEntries(false, 3, []uint64{0, 1, 2}, []uint64{1, 0, 2})
	require.NoError(t, err)
	require.True(t, c.Exists(1, 0))
	require.Equal(t, 1, c.SelfLoops())

	cases := []struct {
		name     string
		directed bool
		dim      uint64
		rows     []uint64
		cols     []uint64
	}{
		{"length mismatch", true, 3, []uint64{0}, nil},
		{"row out of range", true, 2, []uint64{2}, []uint64{0}},
		{"col out of range", true, 2, []uint64{0}, []uint64{2}},
		{"duplicate", true, 2, []uint64{0, 0}, []uint64{1, 1}},
		{"missing mirror", false, 2, []uint64{0}, []uint64{1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.FromEntries(tc.directed, tc.dim, tc.rows, tc.cols)
			require.ErrorIs(t, err, matrix.ErrInvalidEntries)
		})
	}
}

func TestAllStopsEarly(t *testing.T) {
	c := matrix.NewCoordinate(matrix.WithDirected(true))
	c.Insert(0, 1)
	c.Insert(1, 2)
	c.Insert(2, 3)

	seen := 0
	for range c.All() {
		seen++
		if seen == 2 {
			break
		}
	}
	require.Equal(t, 2, seen)
}

func TestWithCapacityPanicsOnNegative(t *testing.T) {
	require.Panics(t, func() { matrix.WithCapacity(-1) })
}

// TestRandomSequenceMatchesReference replays random add/remove sequences
// against a map-based reference edge set.
func TestRandomSequenceMatchesReference(t *testing.T) {
	for _, directed := range []bool{false, true} {
		rng := rand.New(rand.NewSource(7))
		c := matrix.NewCoordinate(matrix.WithDirected(directed))
		ref := map[[2]uint64]bool{}

		for step := 0; step < 2000; step++ {
			r, col := uint64(rng.Intn(12)), uint64(rng.Intn(12))
			if rng.Intn(3) == 0 {
				err := c.Remove(r, col)
				if ref[[2]uint64{r, col}] {
					require.NoError(t, err)
					delete(ref, [2]uint64{r, col})
					if !directed {
						delete(ref, [2]uint64{col, r})
					}
				} else if r < c.Dimension() && col < c.Dimension() {
					require.ErrorIs(t, err, matrix.ErrNotFound)
				}
				continue
			}
			c.Insert(r, col)
			ref[[2]uint64{r, col}] = true
			if !directed {
				ref[[2]uint64{col, r}] = true
			}
		}

		require.Equal(t, len(ref), c.Len())
		for r := uint64(0); r < 12; r++ {
			for col := uint64(0); col < 12; col++ {
				require.Equal(t, ref[[2]uint64{r, col}], c.Exists(r, col), "(%d,%d)", r, col)
			}
		}
	}
}
