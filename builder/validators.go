// SPDX-License-Identifier: MIT
// Package: graphrox/builder
//
// validators.go: parameter checks shared by constructors.

package builder

// validateMin ensures got ≥ min.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "n=%d < min=%d", got, min)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability]; NaN fails.
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return builderErrorf(method, ErrInvalidProbability, "p=%v not in [%.1f,%.1f]", p, MinProbability, MaxProbability)
	}

	return nil
}
