// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/graphrox/blobstore"
	"github.com/katalvlaran/graphrox/codec"
	"github.com/katalvlaran/graphrox/compress"
	"github.com/katalvlaran/graphrox/core"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the parallel uploads of SavePyramid.
const DefaultConcurrency = 4

// ErrNotFound is returned by Load for names that hold no blob.
var ErrNotFound = blobstore.ErrNotFound

// ErrInvalidLevel indicates a pyramid level with block dimension < 1 or a
// non-finite threshold.
var ErrInvalidLevel = errors.New("store: invalid pyramid level")

// Option configures a GraphStore.
type Option func(*GraphStore)

// WithCompression selects the envelope algorithm for Save.
func WithCompression(algo compress.Algorithm) Option {
	return func(s *GraphStore) { s.algo = algo }
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("store: WithLogger(nil)")
	}

	return func(s *GraphStore) { s.log = l }
}

// WithMetrics attaches Prometheus collectors created by NewMetrics.
func WithMetrics(m *Metrics) Option {
	return func(s *GraphStore) { s.metrics = m }
}

// WithConcurrency bounds the parallel uploads of SavePyramid. Panics if n < 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic("store: WithConcurrency(n<1)")
	}

	return func(s *GraphStore) { s.concurrency = n }
}

// GraphStore saves and loads graphs by name.
type GraphStore struct {
	backend     blobstore.BlobStore
	algo        compress.Algorithm
	log         *slog.Logger
	metrics     *Metrics
	concurrency int
}

// New wraps backend. Logging is discarded unless WithLogger is given.
func New(backend blobstore.BlobStore, opts ...Option) *GraphStore {
	s := &GraphStore{
		backend:     backend,
		algo:        compress.None,
		log:         slog.New(slog.DiscardHandler),
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Backend returns the underlying blob store.
func (s *GraphStore) Backend() blobstore.BlobStore { return s.backend }

// Compression reports the envelope algorithm used by Save.
func (s *GraphStore) Compression() compress.Algorithm { return s.algo }

// begin tags one operation with a fresh id for log correlation.
func (s *GraphStore) begin(op, name string) (*slog.Logger, time.Time) {
	return s.log.With("op", op, "name", name, "op_id", uuid.NewString()), time.Now()
}

func (s *GraphStore) finish(log *slog.Logger, op string, n int, start time.Time, err error) {
	d := time.Since(start)
	s.metrics.observe(op, n, d, err)
	if err != nil {
		log.Error("store operation failed", "duration", d, "err", err)
		return
	}
	log.Debug("store operation done", "bytes", n, "duration", d)
}

// encode runs the codec and the envelope.
func (s *GraphStore) encode(g *core.Graph) ([]byte, error) {
	raw := codec.Encode(g)
	if s.algo == compress.None {
		return raw, nil
	}

	return compress.Encode(raw, s.algo)
}

// Save writes g under name, replacing any previous graph.
func (s *GraphStore) Save(ctx context.Context, name string, g *core.Graph) (err error) {
	log, start := s.begin("save", name)
	n := 0
	defer func() { s.finish(log, "save", n, start, err) }()

	data, err := s.encode(g)
	if err != nil {
		return fmt.Errorf("store: save %s: %w", name, err)
	}
	n = len(data)
	if err := s.backend.Put(ctx, name, data); err != nil {
		return fmt.Errorf("store: save %s: %w", name, err)
	}

	return nil
}

// Load reads and decodes the graph stored under name.
//
// Errors:
//   - ErrNotFound if name does not exist.
//   - codec.ErrInvalidFormat or compress.ErrCorrupt for damaged blobs.
func (s *GraphStore) Load(ctx context.Context, name string) (g *core.Graph, err error) {
	log, start := s.begin("load", name)
	n := 0
	defer func() { s.finish(log, "load", n, start, err) }()

	data, err := s.backend.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("store: load %s: %w", name, err)
	}
	n = len(data)
	raw, _, err := compress.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("store: load %s: %w", name, err)
	}
	g, err = codec.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("store: load %s: %w", name, err)
	}

	return g, nil
}

// Delete removes name; missing names are not an error.
func (s *GraphStore) Delete(ctx context.Context, name string) (err error) {
	log, start := s.begin("delete", name)
	defer func() { s.finish(log, "delete", 0, start, err) }()

	if err := s.backend.Delete(ctx, name); err != nil {
		return fmt.Errorf("store: delete %s: %w", name, err)
	}

	return nil
}

// List returns the sorted names starting with prefix.
func (s *GraphStore) List(ctx context.Context, prefix string) (names []string, err error) {
	log, start := s.begin("list", prefix)
	defer func() { s.finish(log, "list", 0, start, err) }()

	names, err = s.backend.List(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("store: list %q: %w", prefix, err)
	}

	return names, nil
}

// Level is one approximation of a pyramid.
type Level struct {
	BlockDim  uint64
	Threshold float64
}

// LevelName is the blob name of a pyramid level: "<name>.bd<BlockDim>".
func LevelName(name string, l Level) string {
	return fmt.Sprintf("%s.bd%d", name, l.BlockDim)
}

// SavePyramid stores g under name and, for every level, g.Approximate
// (BlockDim, Threshold) under LevelName(name, level). Approximations are
// computed one after another before any upload starts; the uploads then
// run with bounded concurrency. It returns the written names, source first.
// A failed upload cancels the remaining ones; blobs already written stay.
func (s *GraphStore) SavePyramid(ctx context.Context, name string, g *core.Graph, levels ...Level) ([]string, error) {
	log := s.log.With("op", "pyramid", "name", name)

	type job struct {
		name  string
		graph *core.Graph
	}
	jobs := []job{{name: name, graph: g}}
	seen := map[string]bool{name: true}
	for _, l := range levels {
		lname := LevelName(name, l)
		if seen[lname] {
			return nil, fmt.Errorf("store: pyramid %s: duplicate block dimension %d: %w", name, l.BlockDim, ErrInvalidLevel)
		}
		seen[lname] = true
		approx, err := g.Approximate(l.BlockDim, l.Threshold)
		if err != nil {
			return nil, fmt.Errorf("store: pyramid %s: %w: %w", name, ErrInvalidLevel, err)
		}
		log.Debug("level computed", "block_dim", l.BlockDim, "threshold", l.Threshold,
			"vertices", approx.VertexCount(), "edges", approx.EdgeCount())
		jobs = append(jobs, job{name: lname, graph: approx})
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(s.concurrency)
	for _, j := range jobs {
		eg.Go(func() error { return s.Save(ctx, j.name, j.graph) })
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	names := make([]string, len(jobs))
	for i, j := range jobs {
		names[i] = j.name
	}

	return names, nil
}

// LoadPyramid loads the approximation of name stored for blockDim.
func (s *GraphStore) LoadPyramid(ctx context.Context, name string, blockDim uint64) (*core.Graph, error) {
	return s.Load(ctx, LevelName(name, Level{BlockDim: blockDim}))
}

// PyramidLevels lists the block dimensions stored for name, ascending.
func (s *GraphStore) PyramidLevels(ctx context.Context, name string) ([]uint64, error) {
	prefix := name + ".bd"
	names, err := s.List(ctx, prefix)
	if err != nil {
		return nil, err
	}
	var dims []uint64
	for _, n := range names {
		bd, err := strconv.ParseUint(strings.TrimPrefix(n, prefix), 10, 64)
		if err != nil {
			continue
		}
		dims = append(dims, bd)
	}
	slices.Sort(dims)

	return dims, nil
}
