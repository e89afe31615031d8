// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"

	"github.com/urfave/cli/v3"
	"gonum.org/v1/gonum/mat"

	"github.com/staranto/matcache/internal/matrix"
	"github.com/staranto/matcache/internal/memo"
	"github.com/staranto/matcache/internal/meta"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// SourceMatrix resolves the input matrix for a command: --file when given,
// otherwise a generated matrix of --size seeded by --seed.
func SourceMatrix(cmd *cli.Command) (*mat.Dense, error) {
	if file := cmd.String("file"); file != "" {
		return matrix.ReadFile(file)
	}

	size := cmd.Int("size")
	if size < 1 {
		return nil, fmt.Errorf("size must be positive, got %d", size)
	}

	return matrix.Random(size, int64(cmd.Int("seed"))), nil
}

// InvertTransform builds the transform a command hands to the memo layer.
// A positive --cond becomes the solver tolerance closed over by the
// transform; it is not part of any cache state.
func InvertTransform(cmd *cli.Command) memo.Transform[*mat.Dense, *mat.Dense] {
	if maxCond := cmd.Float("cond"); maxCond > 0 {
		return func(a *mat.Dense) (*mat.Dense, error) {
			return matrix.InvertWithCond(a, maxCond)
		}
	}
	return matrix.Invert
}
