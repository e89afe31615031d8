// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cell

// Cell holds a single (source, derived) pair. The derived value is whatever
// some expensive transform produced from the current source; Cell itself
// never computes anything and never fails. The one rule it enforces is
// invalidation: replacing the source always clears the derived slot.
type Cell[T, D any] struct {
	source  T
	derived D
	valid   bool
}

// New returns a Cell holding source with no derived value yet.
func New[T, D any](source T) *Cell[T, D] {
	return &Cell[T, D]{source: source}
}

// Source returns the current source value.
func (c *Cell[T, D]) Source() T {
	return c.source
}

// SetSource replaces the source and clears the derived slot. The clear is
// unconditional — no equality check against the old value — so setting the
// same source twice still forces a recompute on the next fetch. Comparing
// would save one redundant computation at the cost of requiring T to be
// comparable; we don't.
func (c *Cell[T, D]) SetSource(v T) {
	c.source = v
	var zero D
	c.derived = zero
	c.valid = false
}

// SetDerived stores d as the derived value for the current source. Cell has
// no way to verify that d was actually computed from the current source;
// that contract is the caller's to keep.
func (c *Cell[T, D]) SetDerived(d D) {
	c.derived = d
	c.valid = true
}

// Derived returns the cached derived value and whether it is present.
// Absent means "not currently valid" — never computed, cleared by a
// SetSource, or a prior computation failed. The three cases are deliberately
// indistinguishable.
func (c *Cell[T, D]) Derived() (D, bool) {
	if !c.valid {
		var zero D
		return zero, false
	}
	return c.derived, true
}
