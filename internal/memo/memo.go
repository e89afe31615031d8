// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package memo

import (
	"sync"

	"github.com/apex/log"

	"github.com/staranto/matcache/internal/cell"
)

// Transform maps a source value to its derived value. It must be pure and
// deterministic, and may fail (e.g. inverting a singular matrix). Auxiliary
// parameters such as solver tolerances should be closed over when the
// Transform is built; they are never part of the cache state.
type Transform[T, D any] func(T) (D, error)

// FetchOrCompute returns the cell's derived value, computing and storing it
// via f on a miss. On a hit f is not called at all. If f fails the error is
// returned unchanged and the cell is left untouched — the derived slot stays
// absent, so the next call retries instead of serving a poisoned result.
//
// FetchOrCompute inherits the cell's concurrency model: none. Use Memo when
// multiple goroutines share the cell.
func FetchOrCompute[T, D any](c *cell.Cell[T, D], f Transform[T, D]) (D, error) {
	if d, ok := c.Derived(); ok {
		log.Debug("using cached result")
		return d, nil
	}

	d, err := f(c.Source())
	if err != nil {
		var zero D
		return zero, err
	}

	c.SetDerived(d)
	return d, nil
}

// Memo binds a cell to its transform behind one mutex, making the
// read-check-compute-store sequence atomic. Two goroutines racing on a cold
// Memo serialize: the first runs the transform, the second observes the
// stored result. At most one computation per invalidation epoch.
type Memo[T, D any] struct {
	mu   sync.Mutex
	cell *cell.Cell[T, D]
	f    Transform[T, D]

	hits, misses uint64
}

// New returns a Memo over a fresh cell holding source.
func New[T, D any](source T, f Transform[T, D]) *Memo[T, D] {
	return &Memo[T, D]{
		cell: cell.New[T, D](source),
		f:    f,
	}
}

// Fetch returns the derived value for the current source, computing it at
// most once until the next SetSource. A failed computation is propagated to
// this caller only; nothing is cached and later calls retry.
func (m *Memo[T, D]) Fetch() (D, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.cell.Derived(); ok {
		m.hits++
	} else {
		m.misses++
	}

	return FetchOrCompute(m.cell, m.f)
}

// SetSource replaces the source, invalidating any cached derived value.
func (m *Memo[T, D]) SetSource(v T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cell.SetSource(v)
}

// Source returns the current source value.
func (m *Memo[T, D]) Source() T {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cell.Source()
}

// Stats returns the hit and miss counts seen so far. Purely observational;
// a failed compute still counts as a miss.
func (m *Memo[T, D]) Stats() (hits, misses uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits, m.misses
}
