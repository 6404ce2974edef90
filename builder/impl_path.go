// SPDX-License-Identifier: MIT
// Package: graphrox/builder
//
// impl_path.go: Path(n) and Cycle(n).
//
// Edges run i→i+1; Cycle closes with (n-1)→0. Directed graphs get exactly
// these orientations.

package builder

import "github.com/katalvlaran/graphrox/core"

// Path returns a Constructor for the path P_n (n ≥ 2).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		return chain(g, cfg, methodPath, n, MinPathVertices, false)
	}
}

// Cycle returns a Constructor for the cycle C_n (n ≥ 3).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		return chain(g, cfg, methodCycle, n, MinCycleVertices, true)
	}
}

// chain emits i→i+1 for i in [0,n-1) and, when closed, (n-1)→0.
func chain(g *core.Graph, cfg builderConfig, method string, n, min int, closed bool) error {
	if err := validateMin(method, n, min); err != nil {
		return err
	}
	if err := cfg.checkSpan(method, n); err != nil {
		return err
	}
	if err := cfg.register(g, n); err != nil {
		return err
	}
	for i := 0; i+1 < n; i++ {
		g.AddEdge(cfg.id(i), cfg.id(i+1))
	}
	if closed {
		g.AddEdge(cfg.id(n-1), cfg.id(0))
	}

	return nil
}
