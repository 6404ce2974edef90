package store_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/katalvlaran/graphrox/blobstore"
	"github.com/katalvlaran/graphrox/builder"
	"github.com/katalvlaran/graphrox/codec"
	"github.com/katalvlaran/graphrox/compress"
	"github.com/katalvlaran/graphrox/core"
	"github.com/katalvlaran/graphrox/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(3)},
		builder.Complete(16),
		builder.Scoped(builder.RandomSparse(48, 0.05), builder.WithOffset(16)),
	)
	require.NoError(t, err)

	return g
}

func requireSameGraph(t *testing.T, want, got *core.Graph) {
	t.Helper()
	require.Equal(t, want.Directed(), got.Directed())
	require.Equal(t, want.VertexCount(), got.VertexCount())
	require.Equal(t, want.EdgeCount(), got.EdgeCount())
	for u, v := range want.Edges() {
		require.True(t, got.EdgeExists(u, v), "(%d,%d)", u, v)
	}
}

func TestGraphStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	g := fixture(t)

	for _, algo := range []compress.Algorithm{compress.None, compress.LZ4, compress.Zstd} {
		t.Run(algo.String(), func(t *testing.T) {
			s := store.New(blobstore.NewMemoryStore(), store.WithCompression(algo))
			require.NoError(t, s.Save(ctx, "g/web", g))

			back, err := s.Load(ctx, "g/web")
			require.NoError(t, err)
			requireSameGraph(t, g, back)

			raw, err := s.Backend().Get(ctx, "g/web")
			require.NoError(t, err)
			assert.Equal(t, algo != compress.None, compress.IsEnvelope(raw))
		})
	}
}

func TestGraphStore_LoadsRawCodecBuffers(t *testing.T) {
	ctx := context.Background()
	mem := blobstore.NewMemoryStore()
	g := core.NewDirected()
	g.AddEdge(1, 2)
	require.NoError(t, mem.Put(ctx, "plain", codec.Encode(g)))

	back, err := store.New(mem, store.WithCompression(compress.Zstd)).Load(ctx, "plain")
	require.NoError(t, err)
	requireSameGraph(t, g, back)
}

func TestGraphStore_Errors(t *testing.T) {
	ctx := context.Background()
	mem := blobstore.NewMemoryStore()
	s := store.New(mem)

	_, err := s.Load(ctx, "nope")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, mem.Put(ctx, "short", []byte{1, 2, 3}))
	_, err = s.Load(ctx, "short")
	require.ErrorIs(t, err, codec.ErrInvalidFormat)

	require.NoError(t, mem.Put(ctx, "torn", []byte("GXC\x02")))
	_, err = s.Load(ctx, "torn")
	require.ErrorIs(t, err, compress.ErrCorrupt)

	require.ErrorIs(t, s.Save(ctx, "../bad", core.NewUndirected()), blobstore.ErrInvalidName)
}

func TestGraphStore_DeleteList(t *testing.T) {
	ctx := context.Background()
	s := store.New(blobstore.NewLocalStore(t.TempDir()))
	g := core.NewUndirected()
	g.AddEdge(0, 1)

	for _, n := range []string{"a/x", "a/y", "b/z"} {
		require.NoError(t, s.Save(ctx, n, g))
	}
	names, err := s.List(ctx, "a/")
	require.NoError(t, err)
	assert.Equal(t, []string{"a/x", "a/y"}, names)

	require.NoError(t, s.Delete(ctx, "a/x"))
	require.NoError(t, s.Delete(ctx, "a/x"))
	names, err = s.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a/y", "b/z"}, names)
}

func TestGraphStore_SavePyramid(t *testing.T) {
	ctx := context.Background()
	g := fixture(t)
	s := store.New(blobstore.NewMemoryStore(), store.WithConcurrency(2))

	levels := []store.Level{{BlockDim: 4, Threshold: 0.5}, {BlockDim: 16, Threshold: 0.1}, {BlockDim: 2, Threshold: 0}}
	names, err := s.SavePyramid(ctx, "web", g, levels...)
	require.NoError(t, err)
	assert.Equal(t, []string{"web", "web.bd4", "web.bd16", "web.bd2"}, names)

	for _, l := range levels {
		want, err := g.Approximate(l.BlockDim, l.Threshold)
		require.NoError(t, err)
		got, err := s.LoadPyramid(ctx, "web", l.BlockDim)
		require.NoError(t, err)
		requireSameGraph(t, want, got)
	}

	dims, err := s.PyramidLevels(ctx, "web")
	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 4, 16}, dims)

	// The K16 cluster fills the first block at bd=16.
	top, err := s.LoadPyramid(ctx, "web", 16)
	require.NoError(t, err)
	assert.True(t, top.EdgeExists(0, 0))
}

func TestGraphStore_SavePyramidInvalid(t *testing.T) {
	ctx := context.Background()
	mem := blobstore.NewMemoryStore()
	s := store.New(mem)
	g := fixture(t)

	_, err := s.SavePyramid(ctx, "p", g, store.Level{BlockDim: 0})
	require.ErrorIs(t, err, store.ErrInvalidLevel)
	_, err = s.SavePyramid(ctx, "p", g, store.Level{BlockDim: 4}, store.Level{BlockDim: 4, Threshold: 0.2})
	require.ErrorIs(t, err, store.ErrInvalidLevel)

	names, err := mem.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, names, "nothing uploaded before levels validate")
}

// failingStore rejects puts for one name.
type failingStore struct {
	blobstore.BlobStore
	bad string
}

func (f failingStore) Put(ctx context.Context, name string, data []byte) error {
	if name == f.bad {
		return errors.New("backend down")
	}
	return f.BlobStore.Put(ctx, name, data)
}

func TestGraphStore_SavePyramidUploadFailure(t *testing.T) {
	s := store.New(failingStore{BlobStore: blobstore.NewMemoryStore(), bad: "w.bd8"})
	_, err := s.SavePyramid(context.Background(), "w", fixture(t), store.Level{BlockDim: 8, Threshold: 0.2})
	require.ErrorContains(t, err, "backend down")
}

func TestGraphStore_MetricsAndLogs(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	m := store.NewMetrics(reg)

	var buf bytes.Buffer
	var mu sync.Mutex
	log := slog.New(slog.NewJSONHandler(&lockedWriter{w: &buf, mu: &mu}, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := store.New(blobstore.NewMemoryStore(), store.WithMetrics(m), store.WithLogger(log))
	g := core.NewUndirected()
	g.AddEdge(0, 1)
	require.NoError(t, s.Save(ctx, "m", g))
	_, err := s.Load(ctx, "m")
	require.NoError(t, err)
	_, err = s.Load(ctx, "missing")
	require.Error(t, err)

	count, err := testutil.GatherAndCount(reg, "graphrox_store_operations_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count, "save/ok, load/ok, load/error series")

	mu.Lock()
	out := buf.String()
	mu.Unlock()
	assert.Contains(t, out, `"op":"save"`)
	assert.Contains(t, out, `"op_id":`)
	assert.Contains(t, out, "store operation failed")
}

func TestOptions_Panic(t *testing.T) {
	require.Panics(t, func() { store.WithLogger(nil) })
	require.Panics(t, func() { store.WithConcurrency(0) })
}

type lockedWriter struct {
	w  *bytes.Buffer
	mu *sync.Mutex
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
