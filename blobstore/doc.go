// SPDX-License-Identifier: MIT

// Package blobstore defines the byte-blob backend used to persist encoded
// graphs, plus local-disk, in-memory and rate-limited implementations.
// Object-storage backends live in the minio and s3 subpackages.
//
// Blobs are addressed by slash-separated names ("graphs/web.grx"). Put
// replaces a blob atomically: readers observe either the old or the new
// contents, never a torn write.
package blobstore
