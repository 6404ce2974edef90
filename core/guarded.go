// SPDX-License-Identifier: MIT
//
// File: guarded.go
// Role: Guarded, a read/write-locked handle for sharing one Graph.

package core

import (
	"sync"

	"github.com/katalvlaran/graphrox/matrix"
)

// Guarded serializes access to a Graph with a single sync.RWMutex.
// Writers (Update, AddEdge, RemoveEdge) exclude each other and all readers;
// readers (View, EdgeExists, Snapshot, Approximate) run in parallel.
//
// The wrapped Graph must not be touched directly while the Guarded is in use.
type Guarded struct {
	mu sync.RWMutex
	g  *Graph
}

// NewGuarded takes ownership of g.
func NewGuarded(g *Graph) *Guarded { return &Guarded{g: g} }

// Update runs fn with exclusive access to the graph.
func (s *Guarded) Update(fn func(g *Graph)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.g)
}

// View runs fn with shared access. fn must not mutate the graph.
func (s *Guarded) View(fn func(g *Graph)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.g)
}

// AddEdge is Graph.AddEdge under the write lock.
func (s *Guarded) AddEdge(u, v uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.AddEdge(u, v)
}

// RemoveEdge is Graph.RemoveEdge under the write lock.
func (s *Guarded) RemoveEdge(u, v uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.RemoveEdge(u, v)
}

// EdgeExists is Graph.EdgeExists under the read lock.
func (s *Guarded) EdgeExists(u, v uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.EdgeExists(u, v)
}

// Snapshot returns a deep copy taken under the read lock.
func (s *Guarded) Snapshot() *Graph {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Clone()
}

// OccurrenceProportionMatrix is Graph.OccurrenceProportionMatrix under the read lock.
func (s *Guarded) OccurrenceProportionMatrix(blockDim uint64) (*matrix.BlockMatrix, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.OccurrenceProportionMatrix(blockDim)
}

// Approximate is Graph.Approximate under the read lock.
func (s *Guarded) Approximate(blockDim uint64, threshold float64) (*Graph, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Approximate(blockDim, threshold)
}
