// Package graphrox stores very large sparse graphs and produces smaller
// approximate versions of them.
//
// An approximation partitions the adjacency matrix into fixed-size blocks,
// measures the fraction of possible edges present in each block, and keeps a
// block as a single edge of a much smaller graph when that fraction clears a
// threshold. Nothing is ever materialized densely: the work is proportional
// to the number of stored edges.
//
// Packages:
//
//	dynarray/  growable owned sequences with explicit compaction
//	matrix/    sparse coordinate adjacency (Coordinate) and block
//	             occurrence-proportion matrices (BlockMatrix)
//	core/      Graph: vertices, edges, Approximate, Guarded
//	codec/     canonical big-endian binary encoding of a Graph
//	builder/   deterministic fixture topologies (Complete, Grid, RandomSparse…)
//	compress/  optional LZ4/Zstd envelope around encoded graphs
//	blobstore/  local, in-memory, rate-limited, MinIO and S3 blob backends
//	store/     GraphStore: save/load graphs and approximation pyramids
//
// Quick start:
//
//	g := core.NewUndirected()
//	g.AddEdge(4, 3)
//	g.AddEdge(5, 5)
//	small, _ := g.Approximate(2, 0.5)
//	buf := codec.Encode(small)
//
// The core packages are single-threaded and never log; wrap a Graph in
// core.Guarded to share it. The store layer is safe for concurrent use,
// logs through log/slog and exports Prometheus metrics.
package graphrox
