// SPDX-License-Identifier: MIT

// Package core provides Graph, the user-facing sparse graph of graphrox.
//
// A Graph is a set of uint64 vertex ids and unweighted edges stored in a
// matrix.Coordinate adjacency. Vertex ids are dense indices: a graph whose
// highest referenced id is h has h+1 vertices, including ids that have no
// edges.
//
// Modes:
//
//   - Undirected (default): AddEdge(u,v) also makes EdgeExists(v,u) true.
//   - Directed (WithDirected(true)): edges are one-way.
//
// Self-loops are always allowed and are stored once in either mode.
//
// Approximation:
//
//	bm, _ := g.OccurrenceProportionMatrix(64)  // per-block edge density
//	small, _ := g.Approximate(64, 0.25)         // keep blocks with density > 0.25
//
// The approximation is a new Graph with ⌈(h+1)/64⌉ vertices; the source graph
// is never modified and never aliased.
//
// Concurrency:
//
// Graph holds no locks; one goroutine may mutate it at a time. Wrap a Graph
// in Guarded to share it across goroutines.
//
// Errors:
//
//	ErrEdgeNotFound    - RemoveEdge on an in-range pair that is not stored.
//	ErrInvalidArgument - block dimension < 1 or a non-finite threshold.
package core
