// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command defines the CLI command set for matcache. It wires flags,
// actions, and the shared meta carried through command Metadata.
package command
