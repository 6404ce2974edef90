// SPDX-License-Identifier: MIT
// Package: graphrox/builder
//
// impl_complete.go: Complete(n).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Undirected: each pair {i,j}, i<j, once. Directed: both i→j and j→i.
//   • Self-loops (i,i) only with WithLoops.
//
// Complexity: O(n²) edges.

package builder

import "github.com/katalvlaran/graphrox/core"

// Complete returns a Constructor for the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodComplete, n, MinCompleteVertices); err != nil {
			return err
		}
		if err := cfg.checkSpan(methodComplete, n); err != nil {
			return err
		}
		if err := cfg.register(g, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			if cfg.loops {
				g.AddEdge(cfg.id(i), cfg.id(i))
			}
			for j := i + 1; j < n; j++ {
				g.AddEdge(cfg.id(i), cfg.id(j))
				if g.Directed() {
					g.AddEdge(cfg.id(j), cfg.id(i))
				}
			}
		}

		return nil
	}
}
