// SPDX-License-Identifier: MIT
// Package: graphrox/builder
//
// impl_random_sparse.go: RandomSparse(n, p).
//
// Erdős–Rényi-like generator: include each admissible pair independently
// with probability p.
//   • Undirected: unordered pairs {i,j}, i<j (plus i==j with WithLoops).
//   • Directed: ordered pairs (i,j), i≠j (plus i==j with WithLoops).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • 0 < p < 1 requires an RNG (else ErrNeedRandSource); p ∈ {0,1} is
//     deterministic and draws nothing.
//
// Determinism: trials run i asc, then j asc; a fixed seed fixes the graph.
// Complexity: O(n²) trials.

package builder

import (
	"github.com/katalvlaran/graphrox/core"
)

// RandomSparse returns a Constructor sampling G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, n, MinRandomSparseVertices); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return builderErrorf(methodRandomSparse, ErrNeedRandSource, "p=%v", p)
		}
		if err := cfg.checkSpan(methodRandomSparse, n); err != nil {
			return err
		}
		if err := cfg.register(g, n); err != nil {
			return err
		}

		trial := func() bool {
			switch p {
			case MinProbability:
				return false
			case MaxProbability:
				return true
			}

			return cfg.rng.Float64() < p
		}

		directed := g.Directed()
		for i := 0; i < n; i++ {
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j {
					continue
				}
				if trial() {
					g.AddEdge(cfg.id(i), cfg.id(j))
				}
			}
			if cfg.loops && trial() {
				g.AddEdge(cfg.id(i), cfg.id(i))
			}
		}

		return nil
	}
}
