// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package cell provides a single-slot cache cell: one mutable source value
// and, lazily, the most recently derived result for it. A Cell is not safe
// for concurrent use; callers needing that should reach for memo.Memo, which
// wraps a Cell behind one lock.
package cell
