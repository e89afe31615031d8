// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/matcache/internal/config"
	"github.com/staranto/matcache/internal/memo"
	"github.com/staranto/matcache/internal/meta"
	"github.com/staranto/matcache/internal/output"
)

// InvertCommandAction is the action handler for the "invert" subcommand. It
// resolves the source matrix, fetches its inverse through a memoizing cell
// (repeatedly, when --times asks for it), and emits the result per common
// flags.
func InvertCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "invert"

	src, err := SourceMatrix(cmd)
	if err != nil {
		return err
	}

	cell := memo.New(src, InvertTransform(cmd))

	times := cmd.Int("times")
	if times < 1 {
		times = 1
	}

	// Every fetch past the first is a cache hit; with MATCACHE_LOG=debug the
	// hits are visible on the diagnostic channel.
	inv, err := cell.Fetch()
	for i := 1; i < times && err == nil; i++ {
		inv, err = cell.Fetch()
	}
	if err != nil {
		return fmt.Errorf("failed to invert: %w", err)
	}

	hits, misses := cell.Stats()
	log.Debugf("fetches=%d hits=%d misses=%d", times, hits, misses)

	return output.SpitMatrix(inv, cmd, os.Stdout)
}

// InvertCommandBuilder constructs the cli.Command for "invert", wiring
// metadata, flags, and the action handler.
func InvertCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "invert",
		Usage:     "invert a matrix through the memoizing cell",
		UsageText: `matcache invert [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "YAML file holding the matrix rows",
				Sources: cli.NewValueSourceChain(
					yaml.YAML("invert.file", altsrc.StringSourcer(meta.Config.Source)),
				),
			},
			&cli.IntFlag{
				Name:    "times",
				Aliases: []string{"t"},
				Usage:   "number of fetches to perform",
				Sources: cli.NewValueSourceChain(
					yaml.YAML("invert.times", altsrc.StringSourcer(meta.Config.Source)),
				),
				Value: 1,
			},
			&cli.FloatFlag{
				Name:  "cond",
				Usage: "reject inversion above this condition number (0 disables)",
				Sources: cli.NewValueSourceChain(
					yaml.YAML("invert.cond", altsrc.StringSourcer(meta.Config.Source)),
				),
				Value: 0,
			},
			NewSizeFlag("invert"),
			NewSeedFlag("invert"),
		}, NewGlobalFlags("invert")...),
		Action: InvertCommandAction,
	}
}
