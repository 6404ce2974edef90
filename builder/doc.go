// SPDX-License-Identifier: MIT

// Package builder assembles deterministic core.Graph fixtures from
// composable topology constructors.
//
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithDirected(false)},
//	    []builder.BuilderOption{builder.WithSeed(42)},
//	    builder.Complete(8),
//	    builder.RandomSparse(1024, 0.01),
//	)
//
// Constructors:
//   - Complete(n):        K_n, loop-free unless WithLoops.
//   - Path(n), Cycle(n):  P_n and C_n.
//   - Star(n), Wheel(n):  center id 0 plus n-1 rim vertices.
//   - Grid(rows, cols):   4-neighbourhood lattice, id = r*cols + c.
//   - RandomSparse(n, p): independent Bernoulli(p) trial per admissible pair.
//
// Vertex ids are offset+i for i in [0,n); WithOffset shifts a constructor
// so several topologies can share one graph without overlapping. Every
// constructor registers all n ids, so isolated tail vertices are still
// counted by Graph.VertexCount.
//
// Option constructors panic on meaningless input; constructors themselves
// only return sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed).
package builder
