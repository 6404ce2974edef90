// SPDX-License-Identifier: MIT
// Package: graphrox/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng    = nil   (pure/deterministic unless seeded)
//   • offset = 0     (ids start at 0)
//   • loops  = false (no self-loops from Complete/RandomSparse)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/graphrox/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// First vertex id used by a constructor.
	offset uint64
	// Whether Complete and RandomSparse may emit self-loops.
	loops bool
}

// newBuilderConfig applies opts in order over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// id maps a constructor-local index to a graph vertex id.
func (c builderConfig) id(i int) uint64 { return c.offset + uint64(i) }

// checkSpan rejects n ids that would run past core.MaxVertexID. Once it
// passes, every id in [offset, offset+n) is a valid vertex id.
func (c builderConfig) checkSpan(method string, n int) error {
	if n > 0 && (c.offset > core.MaxVertexID || uint64(n-1) > core.MaxVertexID-c.offset) {
		return builderErrorf(method, ErrConstructFailed, "offset %d + n %d exceeds max vertex id %d",
			c.offset, n, uint64(core.MaxVertexID))
	}

	return nil
}

// register makes every id of [offset, offset+n) part of g.
func (c builderConfig) register(g vertexAdder, n int) error {
	if n > 0 {
		return g.AddVertex(c.id(n - 1))
	}

	return nil
}

// vertexAdder is the slice of core.Graph used by register.
type vertexAdder interface {
	AddVertex(id uint64, neighbors ...uint64) error
}
