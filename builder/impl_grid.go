// SPDX-License-Identifier: MIT
// Package: graphrox/builder
//
// impl_grid.go: Grid(rows, cols).
//
// Vertex (r,c) has local index r*cols + c. Edges run right (r,c)→(r,c+1)
// and down (r,c)→(r+1,c), in row-major order.
//
// Complexity: O(rows·cols).

package builder

import "github.com/katalvlaran/graphrox/core"

// Grid returns a Constructor for a rows×cols 4-neighbourhood lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodGrid, rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, cols, MinGridDim); err != nil {
			return err
		}
		n := rows * cols
		if n/cols != rows {
			return builderErrorf(methodGrid, ErrConstructFailed, "%d×%d overflows int", rows, cols)
		}
		if err := cfg.checkSpan(methodGrid, n); err != nil {
			return err
		}
		if err := cfg.register(g, n); err != nil {
			return err
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				if c+1 < cols {
					g.AddEdge(cfg.id(v), cfg.id(v+1))
				}
				if r+1 < rows {
					g.AddEdge(cfg.id(v), cfg.id(v+cols))
				}
			}
		}

		return nil
	}
}
