// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package memo implements memoized access on top of a cell.Cell and an
// external pure transform: return the cached derived value when present,
// otherwise compute, store, and return it. Policy lives here; the cell stays
// a dumb slot.
package memo
