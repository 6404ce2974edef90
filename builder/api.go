// SPDX-License-Identifier: MIT
// Package: graphrox/builder
//
// api.go: the BuildGraph orchestrator and the Constructor type.
// Same inputs, options, seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphrox/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with gopts, resolves the builder
// configuration from bopts, and applies all constructors in order.
// The first constructor error is wrapped with "BuildGraph: %w" and returned.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph with the given options.
// It is BuildGraph for callers that already own a Graph.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// Scoped returns c with extra options layered over the BuildGraph
// configuration, e.g. to place one topology at a different offset.
func Scoped(c Constructor, opts ...BuilderOption) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if c == nil {
			return fmt.Errorf("Scoped: nil constructor: %w", ErrConstructFailed)
		}
		for _, opt := range opts {
			opt(&cfg)
		}

		return c(g, cfg)
	}
}
