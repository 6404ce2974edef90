// SPDX-License-Identifier: MIT

// Package store persists graphs in a blobstore.BlobStore.
//
// A GraphStore encodes a core.Graph with the codec package, optionally
// wraps the bytes in a compress envelope, and writes them under a name.
// Load reverses the pipeline and accepts both enveloped and raw codec
// buffers, so files written by plain codec.Encode load as well.
//
// SavePyramid stores a graph together with a set of approximations of it
// computed at increasing block dimensions; the uploads run concurrently.
//
// Backends are picked from a YAML Config:
//
//	backend: s3
//	compression: zstd
//	s3:
//	  bucket: graphs
//	  prefix: prod/
//	rate_limit:
//	  ops_per_second: 50
//
// GraphStore is safe for concurrent use. It only reads the graphs handed to
// it; callers must not mutate a graph while a Save of it is in flight.
package store
