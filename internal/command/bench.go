// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/apex/log"
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
	"gonum.org/v1/gonum/mat"

	"github.com/staranto/matcache/internal/config"
	"github.com/staranto/matcache/internal/memo"
	"github.com/staranto/matcache/internal/meta"
	"github.com/staranto/matcache/internal/output"
)

// BenchCommandAction is the action handler for the "bench" subcommand. It
// runs the same inversion N times through the memoizing cell and N times
// directly, then reports elapsed times and the speedup.
func BenchCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "bench"

	src, err := SourceMatrix(cmd)
	if err != nil {
		return err
	}

	iterations := cmd.Int("iterations")
	if iterations < 1 {
		return fmt.Errorf("iterations must be positive, got %d", iterations)
	}

	transform := InvertTransform(cmd)
	report, err := runBench(src, transform, iterations)
	if err != nil {
		return err
	}

	return output.SpitBenchReport(report, cmd, os.Stdout)
}

// runBench does the actual timing. The memoized loop pays for one compute on
// its first fetch and serves the rest from the cell; the direct loop pays
// every time.
func runBench(src *mat.Dense, transform memo.Transform[*mat.Dense, *mat.Dense], iterations int) (output.BenchReport, error) {
	size, _ := src.Dims()
	cell := memo.New(src, transform)

	start := time.Now()
	for i := 0; i < iterations; i++ {
		if _, err := cell.Fetch(); err != nil {
			return output.BenchReport{}, fmt.Errorf("memoized inversion failed: %w", err)
		}
	}
	cached := time.Since(start)

	start = time.Now()
	for i := 0; i < iterations; i++ {
		if _, err := transform(src); err != nil {
			return output.BenchReport{}, fmt.Errorf("direct inversion failed: %w", err)
		}
	}
	direct := time.Since(start)

	hits, misses := cell.Stats()

	return output.BenchReport{
		Size:       size,
		Iterations: iterations,
		Cached:     cached,
		Direct:     direct,
		Hits:       hits,
		Misses:     misses,
	}, nil
}

// BenchCommandBuilder constructs the cli.Command for "bench", wiring
// metadata, flags, and the action handler.
func BenchCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "bench",
		Usage:     "compare memoized fetches against direct inversion",
		UsageText: `matcache bench [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "YAML file holding the matrix rows",
				Sources: cli.NewValueSourceChain(
					yaml.YAML("bench.file", altsrc.StringSourcer(meta.Config.Source)),
				),
			},
			&cli.IntFlag{
				Name:    "iterations",
				Aliases: []string{"i"},
				Usage:   "number of inversions per loop",
				Sources: cli.NewValueSourceChain(
					yaml.YAML("bench.iterations", altsrc.StringSourcer(meta.Config.Source)),
				),
				Value: 1000,
			},
			&cli.FloatFlag{
				Name:  "cond",
				Usage: "reject inversion above this condition number (0 disables)",
				Sources: cli.NewValueSourceChain(
					yaml.YAML("bench.cond", altsrc.StringSourcer(meta.Config.Source)),
				),
				Value: 0,
			},
			NewSizeFlag("bench"),
			NewSeedFlag("bench"),
		}, NewGlobalFlags("bench")...),
		Action: BenchCommandAction,
	}
}
