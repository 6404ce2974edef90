// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph type, construction options and sentinel errors.

package core

import (
	"github.com/katalvlaran/graphrox/matrix"
)

// Sentinel errors for core graph operations. They alias the matrix sentinels
// so errors.Is matches either name.
var (
	// ErrEdgeNotFound indicates RemoveEdge referenced an edge that is not stored.
	ErrEdgeNotFound = matrix.ErrNotFound

	// ErrInvalidArgument indicates a block dimension below 1, a threshold
	// that is NaN or ±Inf, or a vertex id above MaxVertexID.
	ErrInvalidArgument = matrix.ErrInvalidArgument
)

// MaxVertexID is the largest usable vertex id (math.MaxUint64 - 1).
const MaxVertexID = matrix.MaxVertexID

const (
	// DefaultDirected is the mode of a Graph built without WithDirected.
	DefaultDirected = false

	// DefaultCapacity is the number of coordinates preallocated by NewGraph.
	DefaultCapacity = 0
)

// Graph is a sparse directed or undirected graph over uint64 vertex ids.
//
// Graph exclusively owns its adjacency; every value it hands out (Adjacency,
// OccurrenceProportionMatrix, Approximate, Clone) is an independent copy.
type Graph struct {
	directed bool

	// highestVertexID caches adjacency.Dimension()-1 (0 when empty).
	highestVertexID uint64

	adjacency *matrix.Coordinate
}

// GraphOption configures a Graph before construction.
type GraphOption func(*graphOptions)

type graphOptions struct {
	directed bool
	capacity int
}

// WithDirected selects directed (true) or undirected (false) storage.
func WithDirected(directed bool) GraphOption {
	return func(o *graphOptions) { o.directed = directed }
}

// WithCapacity preallocates room for n stored coordinates. Note that an
// undirected edge between distinct vertices occupies two coordinates.
// Panics if n < 0.
func WithCapacity(n int) GraphOption {
	if n < 0 {
		panic("core: WithCapacity(n<0)")
	}

	return func(o *graphOptions) { o.capacity = n }
}

// NewGraph returns an empty graph with zero vertices.
//
//	g := core.NewGraph(core.WithDirected(true), core.WithCapacity(1<<20))
func NewGraph(opts ...GraphOption) *Graph {
	o := graphOptions{directed: DefaultDirected, capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph{
		directed: o.directed,
		adjacency: matrix.NewCoordinate(
			matrix.WithDirected(o.directed),
			matrix.WithCapacity(o.capacity),
		),
	}
}

// NewUndirected is shorthand for NewGraph(WithDirected(false)).
func NewUndirected() *Graph { return NewGraph(WithDirected(false)) }

// NewDirected is shorthand for NewGraph(WithDirected(true)).
func NewDirected() *Graph { return NewGraph(WithDirected(true)) }

// FromAdjacency wraps adj in a Graph, taking ownership: the caller must not
// use adj afterwards. The mode follows adj.Directed().
func FromAdjacency(adj *matrix.Coordinate) *Graph {
	g := &Graph{directed: adj.Directed(), adjacency: adj}
	g.refreshHighest()

	return g
}

// refreshHighest recomputes the cached highest vertex id from the dimension.
func (g *Graph) refreshHighest() {
	if d := g.adjacency.Dimension(); d > 0 {
		g.highestVertexID = d - 1
	} else {
		g.highestVertexID = 0
	}
}
