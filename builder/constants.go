// SPDX-License-Identifier: MIT
// Package: graphrox/builder
//
// constants.go: method tags and minimum sizes per constructor.

package builder

const (
	methodComplete     = "Complete"
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodWheel        = "Wheel"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"
)

// Minimum sizes.
const (
	MinCompleteVertices     = 1
	MinPathVertices         = 2
	MinCycleVertices        = 3
	MinStarVertices         = 2
	MinWheelVertices        = 4
	MinGridDim              = 1
	MinRandomSparseVertices = 1

	MinProbability = 0.0
	MaxProbability = 1.0
)
