// SPDX-License-Identifier: MIT
// Package: graphrox/builder
//
// impl_star.go: Star(n) and Wheel(n).
//
// The center is local index 0; rim vertices are 1..n-1. Spokes run
// center→rim; the Wheel rim runs i→i+1 and closes (n-1)→1.

package builder

import "github.com/katalvlaran/graphrox/core"

// Star returns a Constructor for the star S_n with n-1 leaves (n ≥ 2).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodStar, n, MinStarVertices); err != nil {
			return err
		}
		if err := cfg.checkSpan(methodStar, n); err != nil {
			return err
		}
		spokes(g, cfg, n)

		return nil
	}
}

// Wheel returns a Constructor for W_n: a center joined to a C_{n-1} rim (n ≥ 4).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodWheel, n, MinWheelVertices); err != nil {
			return err
		}
		if err := cfg.checkSpan(methodWheel, n); err != nil {
			return err
		}
		spokes(g, cfg, n)
		for i := 1; i+1 < n; i++ {
			g.AddEdge(cfg.id(i), cfg.id(i+1))
		}
		g.AddEdge(cfg.id(n-1), cfg.id(1))

		return nil
	}
}

func spokes(g *core.Graph, cfg builderConfig, n int) {
	center := cfg.id(0)
	for i := 1; i < n; i++ {
		g.AddEdge(center, cfg.id(i))
	}
}
