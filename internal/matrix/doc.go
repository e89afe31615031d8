// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package matrix wraps gonum's dense matrix inversion behind the small
// contract the cache layers depend on (pure, deterministic, may fail), and
// provides the construction and I/O helpers the CLI commands use.
package matrix
