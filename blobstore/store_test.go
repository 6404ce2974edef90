package blobstore_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/katalvlaran/graphrox/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// conformance runs the shared BlobStore contract against one backend.
func conformance(t *testing.T, store blobstore.BlobStore) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	require.ErrorIs(t, err, blobstore.ErrNotFound)

	require.NoError(t, store.Put(ctx, "graphs/a.grx", []byte("one")))
	require.NoError(t, store.Put(ctx, "graphs/b.grx", []byte("two")))
	require.NoError(t, store.Put(ctx, "other", []byte{}))

	got, err := store.Get(ctx, "graphs/a.grx")
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), got)

	// Overwrite replaces.
	require.NoError(t, store.Put(ctx, "graphs/a.grx", []byte("uno")))
	got, err = store.Get(ctx, "graphs/a.grx")
	require.NoError(t, err)
	assert.Equal(t, []byte("uno"), got)

	// Returned bytes are not aliased.
	got[0] = 'X'
	again, err := store.Get(ctx, "graphs/a.grx")
	require.NoError(t, err)
	assert.Equal(t, []byte("uno"), again)

	names, err := store.List(ctx, "graphs/")
	require.NoError(t, err)
	assert.Equal(t, []string{"graphs/a.grx", "graphs/b.grx"}, names)

	all, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"graphs/a.grx", "graphs/b.grx", "other"}, all)

	require.NoError(t, store.Delete(ctx, "graphs/a.grx"))
	require.NoError(t, store.Delete(ctx, "graphs/a.grx"), "second delete is a no-op")
	_, err = store.Get(ctx, "graphs/a.grx")
	require.ErrorIs(t, err, blobstore.ErrNotFound)

	require.ErrorIs(t, store.Put(ctx, "../escape", []byte("x")), blobstore.ErrInvalidName)
	require.ErrorIs(t, store.Put(ctx, "", []byte("x")), blobstore.ErrInvalidName)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	require.ErrorIs(t, store.Put(cancelled, "late", []byte("x")), context.Canceled)
}

func TestMemoryStore(t *testing.T) {
	conformance(t, blobstore.NewMemoryStore())
}

func TestLocalStore(t *testing.T) {
	root := t.TempDir()
	conformance(t, blobstore.NewLocalStore(root))

	// No temp files linger after successful writes.
	entries, err := os.ReadDir(filepath.Join(root, "graphs"))
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp-")
	}
}

func TestLocalStore_MissingRoot(t *testing.T) {
	store := blobstore.NewLocalStore(filepath.Join(t.TempDir(), "nope"))
	names, err := store.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestLocalStore_ConcurrentPut(t *testing.T) {
	store := blobstore.NewLocalStore(t.TempDir())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, store.Put(ctx, "shared", []byte(fmt.Sprintf("writer-%02d", i))))
		}(i)
	}
	wg.Wait()

	got, err := store.Get(ctx, "shared")
	require.NoError(t, err)
	assert.Len(t, got, len("writer-00"), "never torn")
}

func TestCleanName(t *testing.T) {
	for _, bad := range []string{"", "/abs", "..", "../x", "a/../../x", `a\b`, "."} {
		_, err := blobstore.CleanName(bad)
		assert.ErrorIs(t, err, blobstore.ErrInvalidName, bad)
	}
	got, err := blobstore.CleanName("a//b/./c")
	require.NoError(t, err)
	assert.Equal(t, "a/b/c", got)
}

func TestRateLimited(t *testing.T) {
	inner := blobstore.NewMemoryStore()
	conformance(t, blobstore.NewRateLimited(inner, 0, 0))

	// 16 bytes/s with a 16 byte burst: the second 16 byte put waits ~1s,
	// which a 50ms deadline cannot cover.
	limited := blobstore.NewRateLimited(inner, 0, 16)
	ctx := context.Background()
	require.NoError(t, limited.Put(ctx, "a", make([]byte, 16)))

	short, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	err := limited.Put(short, "b", make([]byte, 16))
	require.Error(t, err)
	_, getErr := inner.Get(ctx, "b")
	assert.True(t, errors.Is(getErr, blobstore.ErrNotFound), "rejected put never reaches the backend")
}

func TestRateLimited_Ops(t *testing.T) {
	limited := blobstore.NewRateLimited(blobstore.NewMemoryStore(), 1, 0)
	ctx := context.Background()
	_, err := limited.List(ctx, "")
	require.NoError(t, err)

	short, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	_, err = limited.List(short, "")
	require.Error(t, err)
}
