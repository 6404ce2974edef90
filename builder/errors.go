// SPDX-License-Identifier: MIT
// Package: graphrox/builder
//
// errors.go: sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is
// smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1] (NaN included).
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed
// or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates BuildGraph could not run a constructor, for
// example a nil one, or that ids would overflow uint64.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a formatted message with the constructor name and
// wraps sentinel.
func builderErrorf(method string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
