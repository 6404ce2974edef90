// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: vertex/edge mutation and query methods of Graph.
// Invariants:
//   - highestVertexID == max(Dimension(), 1) - 1 after every exported call.
//   - Undirected: EdgeExists(u,v) == EdgeExists(v,u).

package core

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/graphrox/matrix"
)

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// HighestVertexID returns the largest vertex id the graph covers, or 0 for
// an empty graph. Use VertexCount to tell "empty" from "only vertex 0".
// Complexity: O(1).
func (g *Graph) HighestVertexID() uint64 { return g.highestVertexID }

// Dimension is the side length of the adjacency matrix.
func (g *Graph) Dimension() uint64 { return g.adjacency.Dimension() }

// VertexCount returns the number of vertex ids covered: HighestVertexID()+1,
// or 0 for an empty graph.
func (g *Graph) VertexCount() uint64 { return g.adjacency.Dimension() }

// CoordinateCount returns the number of stored adjacency coordinates. It
// differs from EdgeCount in undirected mode, where each non-loop edge is
// stored in both orientations.
func (g *Graph) CoordinateCount() int { return g.adjacency.Len() }

// EdgeCount returns the number of distinct edges. In undirected mode a pair
// {u,v} with u != v counts once even though it is stored twice; a self-loop
// is stored once and counts once.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	if g.directed {
		return g.adjacency.Len()
	}

	return (g.adjacency.Len() + g.adjacency.SelfLoops()) / 2
}

// AddVertex registers id and adds an edge from id to every neighbor.
// No-op on already present edges.
//
// Errors:
//   - ErrInvalidArgument if id or a neighbor exceeds MaxVertexID; the graph
//     is left unchanged.
func (g *Graph) AddVertex(id uint64, neighbors ...uint64) error {
	if err := g.adjacency.AddVertex(id, neighbors...); err != nil {
		return fmt.Errorf("AddVertex: %w", err)
	}
	g.refreshHighest()

	return nil
}

// RemoveVertex deletes every edge incident to id. The vertex count is kept;
// call Shrink to drop trailing isolated ids.
func (g *Graph) RemoveVertex(id uint64) {
	g.adjacency.RemoveVertex(id)
	g.refreshHighest()
}

// AddEdge stores the edge u→v (and v→u when undirected). Idempotent.
// Complexity: amortized O(1).
//
// Errors:
//   - ErrInvalidArgument if u or v exceeds MaxVertexID.
func (g *Graph) AddEdge(u, v uint64) error {
	if err := g.adjacency.Insert(u, v); err != nil {
		return fmt.Errorf("AddEdge: %w", err)
	}
	g.refreshHighest()

	return nil
}

// RemoveEdge deletes the edge u→v (and v→u when undirected).
// Pairs outside the vertex range are a no-op.
//
// Errors:
//   - ErrEdgeNotFound if u and v are in range but the edge is not stored.
func (g *Graph) RemoveEdge(u, v uint64) error {
	if err := g.adjacency.Remove(u, v); err != nil {
		return fmt.Errorf("RemoveEdge: %w", err)
	}

	return nil
}

// EdgeExists reports whether the edge u→v is stored.
// Complexity: O(1) expected (bitmap probe).
func (g *Graph) EdgeExists(u, v uint64) bool { return g.adjacency.Exists(u, v) }

// Shrink lowers the vertex count to (highest id referenced by an edge)+1,
// or to 0 when no edges remain, and releases spare storage.
func (g *Graph) Shrink() {
	g.adjacency.Shrink()
	g.refreshHighest()
}

// Edges yields every stored coordinate in storage order. In undirected mode
// each non-loop edge is yielded in both orientations. The graph must not be
// mutated while iterating.
func (g *Graph) Edges() iter.Seq2[uint64, uint64] { return g.adjacency.All() }

// Adjacency returns a deep copy of the adjacency matrix.
func (g *Graph) Adjacency() *matrix.Coordinate { return g.adjacency.Clone() }

// Clone returns an independent deep copy of g.
func (g *Graph) Clone() *Graph {
	return &Graph{
		directed:        g.directed,
		highestVertexID: g.highestVertexID,
		adjacency:       g.adjacency.Clone(),
	}
}

// String renders the adjacency as a dense 0/1 matrix, one row per line.
func (g *Graph) String() string { return g.adjacency.String() }
