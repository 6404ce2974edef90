// SPDX-License-Identifier: MIT
//
// File: approximate.go
// Role: block aggregation and thresholded approximation of a Graph.

package core

import (
	"fmt"

	"github.com/katalvlaran/graphrox/matrix"
)

// OccurrenceProportionMatrix partitions the adjacency into blockDim×blockDim
// blocks and reports the fraction of possible edges present in each block.
// The result is a snapshot; later mutations of g do not affect it.
//
// Errors:
//   - ErrInvalidArgument if blockDim < 1.
//
// Complexity: O(E log B), E stored coordinates, B non-empty blocks.
func (g *Graph) OccurrenceProportionMatrix(blockDim uint64) (*matrix.BlockMatrix, error) {
	bm, err := matrix.OccurrenceProportion(g.adjacency, blockDim)
	if err != nil {
		return nil, fmt.Errorf("OccurrenceProportionMatrix: %w", err)
	}

	return bm, nil
}

// Approximate builds a smaller graph with one vertex per block: an edge
// (br,bc) exists iff the occurrence proportion of block (br,bc) is strictly
// greater than threshold. The result inherits g's directedness and has
// ⌈VertexCount()/blockDim⌉ vertices.
//
//   - threshold >= 1 yields a graph with no edges.
//   - threshold <= 0 yields a complete graph with a self-loop on every vertex.
//
// Errors:
//   - ErrInvalidArgument if blockDim < 1 or threshold is NaN or ±Inf.
func (g *Graph) Approximate(blockDim uint64, threshold float64) (*Graph, error) {
	const method = "Approximate"
	bm, err := matrix.OccurrenceProportion(g.adjacency, blockDim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	adj, err := bm.Threshold(threshold, g.directed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return FromAdjacency(adj), nil
}
