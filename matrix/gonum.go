// SPDX-License-Identifier: MIT
//
// File: gonum.go
// Role: read-only gonum mat.Matrix views over Coordinate and BlockMatrix.
// Policy:
//   - Views never copy or densify; At answers from the sparse storage.
//   - Out-of-range access panics with mat.ErrRowAccess/mat.ErrColAccess,
//     matching gonum's own matrices.
//   - A Coordinate view is live: it observes later mutations of its source.

package matrix

import "gonum.org/v1/gonum/mat"

var (
	_ mat.Matrix = coordinateView{}
	_ mat.Matrix = blockView{}
)

// AsGonum exposes c as a 0/1 valued mat.Matrix.
func (c *Coordinate) AsGonum() mat.Matrix { return coordinateView{c: c} }

// AsGonum exposes the block proportions as a mat.Matrix.
func (m *BlockMatrix) AsGonum() mat.Matrix { return blockView{m: m} }

type coordinateView struct{ c *Coordinate }

func (v coordinateView) Dims() (r, c int) {
	n := int(v.c.dimension)

	return n, n
}

func (v coordinateView) At(i, j int) float64 {
	checkAccess(i, j, v.c.dimension)
	if v.c.Exists(uint64(i), uint64(j)) {
		return 1
	}

	return 0
}

func (v coordinateView) T() mat.Matrix { return mat.Transpose{Matrix: v} }

type blockView struct{ m *BlockMatrix }

func (v blockView) Dims() (r, c int) {
	n := int(v.m.dimension)

	return n, n
}

func (v blockView) At(i, j int) float64 {
	checkAccess(i, j, v.m.dimension)

	return v.m.At(uint64(i), uint64(j))
}

func (v blockView) T() mat.Matrix { return mat.Transpose{Matrix: v} }

func checkAccess(i, j int, n uint64) {
	if i < 0 || uint64(i) >= n {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || uint64(j) >= n {
		panic(mat.ErrColAccess)
	}
}
