// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Coordinate construction.
//
// Contract:
//   - Option values are plain setters applied left-to-right (last wins).
//   - Option constructors panic on nonsensical values (programmer error);
//     operations never panic on user input.
//   - Defaults below are the single source of truth for zero-option behavior.

package matrix

// Defaults for NewCoordinate.
const (
	// DefaultDirected makes new matrices undirected: (r,c) mirrors into (c,r).
	DefaultDirected = false

	// DefaultCapacity is the number of coordinate slots reserved up front.
	DefaultCapacity = 0
)

const panicCapacityInvalid = "matrix: WithCapacity: capacity must be >= 0"

// Option mutates Options before a Coordinate is allocated.
type Option func(*Options)

// Options stores the resolved construction policy.
type Options struct {
	directed bool // DefaultDirected
	capacity int  // DefaultCapacity
}

// WithDirected selects directed (true) or undirected (false) storage.
func WithDirected(directed bool) Option {
	return func(o *Options) { o.directed = directed }
}

// WithCapacity reserves room for n stored coordinates.
// Panics if n is negative.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *Options) { o.capacity = n }
}

// gatherOptions resolves opts over the documented defaults.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := Options{
		directed: DefaultDirected,
		capacity: DefaultCapacity,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
