// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package version carries the build version reported by --version. The
// default is overridden at release time via -ldflags.
package version

var Version = "dev"
