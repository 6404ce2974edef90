// SPDX-License-Identifier: MIT
// Package: graphrox/builder
//
// options.go: functional options for the builder package.
//
// Option constructors VALIDATE and PANIC on meaningless inputs.
// Constructors themselves never panic.

package builder

import (
	"math/rand"
)

// BuilderOption customizes constructors by mutating a builderConfig before
// graph construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithOffset shifts every generated vertex id by offset.
func WithOffset(offset uint64) BuilderOption {
	return func(c *builderConfig) { c.offset = offset }
}

// WithLoops lets Complete and RandomSparse emit self-loops (v,v).
func WithLoops() BuilderOption {
	return func(c *builderConfig) { c.loops = true }
}
