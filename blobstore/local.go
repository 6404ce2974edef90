// SPDX-License-Identifier: MIT

package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// tmpPrefix marks in-flight writes; List never reports them.
const tmpPrefix = ".tmp-"

// LocalStore implements BlobStore using the local file system.
// Each blob is one file below root; Put writes a temp file in the target
// directory, syncs it and renames it into place.
type LocalStore struct {
	root string
	perm fs.FileMode
}

// NewLocalStore creates a new LocalStore rooted at the given directory.
// The directory is created on first Put.
func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root, perm: 0o644}
}

// Root returns the directory blobs are stored under.
func (s *LocalStore) Root() string { return s.root }

func (s *LocalStore) path(name string) (string, error) {
	clean, err := CleanName(name)
	if err != nil {
		return "", err
	}

	return filepath.Join(s.root, filepath.FromSlash(clean)), nil
}

// Get reads the whole file.
func (s *LocalStore) Get(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := s.path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("blobstore: get %s: %w", name, err)
	}

	return data, nil
}

// Put writes data to a temp file and renames it over name.
func (s *LocalStore) Put(ctx context.Context, name string, data []byte) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := s.path(name)
	if err != nil {
		return err
	}
	dir := filepath.Dir(p)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("blobstore: put %s: %w", name, err)
	}

	f, err := os.CreateTemp(dir, tmpPrefix+"*")
	if err != nil {
		return fmt.Errorf("blobstore: put %s: %w", name, err)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if _, err = f.Write(data); err != nil {
		return fmt.Errorf("blobstore: put %s: %w", name, err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("blobstore: put %s: %w", name, err)
	}
	if err = f.Chmod(s.perm); err != nil {
		return fmt.Errorf("blobstore: put %s: %w", name, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("blobstore: put %s: %w", name, err)
	}
	if err = os.Rename(f.Name(), p); err != nil {
		return fmt.Errorf("blobstore: put %s: %w", name, err)
	}

	return nil
}

// Delete removes the file; a missing file is not an error.
func (s *LocalStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("blobstore: delete %s: %w", name, err)
	}

	return nil
}

// List walks root and returns slash-separated names with the prefix.
// A missing root lists as empty.
func (s *LocalStore) List(ctx context.Context, prefix string) ([]string, error) {
	var names []string
	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && p == s.root {
				return fs.SkipAll
			}
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), tmpPrefix) {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("blobstore: list %q: %w", prefix, err)
	}
	sort.Strings(names)

	return names, nil
}
