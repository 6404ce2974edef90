// SPDX-License-Identifier: MIT

package blobstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations return an error that satisfies errors.Is(err, ErrNotFound).
// It maps to os.ErrNotExist.
var ErrNotFound = os.ErrNotExist

// ErrInvalidName is returned for empty names, absolute names, and names that
// escape the store root ("..").
var ErrInvalidName = errors.New("blobstore: invalid blob name")

// BlobStore is a flat namespace of immutable byte blobs.
// Implementations are safe for concurrent use.
type BlobStore interface {
	// Get returns the full contents of name.
	Get(ctx context.Context, name string) ([]byte, error)
	// Put writes data to name atomically, replacing any previous blob.
	Put(ctx context.Context, name string, data []byte) error
	// Delete removes name. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error
	// List returns the sorted names that start with prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}

// CleanName validates name and returns its canonical slash form.
func CleanName(name string) (string, error) {
	if name == "" || strings.HasPrefix(name, "/") || strings.ContainsRune(name, '\\') {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	clean := path.Clean(name)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return clean, nil
}
