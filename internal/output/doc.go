// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output provides emission utilities used by commands to present
// matrices and bench reports in various formats.
package output
