// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/matcache/internal/config"
)

func init() {
	cfg, _ = config.Load("")
}

var cfg config.Type

// NewGlobalFlags returns the flags shared by every subcommand. Values fall
// back to the config file, first under the subcommand namespace and then at
// the top level.
func NewGlobalFlags(ns string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"color", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("color", altsrc.StringSourcer(cfg.Source)),
			),
			Value: false,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format: table, json or yaml",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"output", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("output", altsrc.StringSourcer(cfg.Source)),
			),
			Value: "table",
		},
	}
	return
}

// NewSizeFlag is the generated-matrix dimension, used when no --file is
// given.
func NewSizeFlag(ns string) *cli.IntFlag {
	return &cli.IntFlag{
		Name:    "size",
		Aliases: []string{"n"},
		Usage:   "dimension of the generated matrix",
		Sources: cli.NewValueSourceChain(
			yaml.YAML(ns+"."+"size", altsrc.StringSourcer(cfg.Source)),
			yaml.YAML("size", altsrc.StringSourcer(cfg.Source)),
		),
		Value: 8,
	}
}

// NewSeedFlag seeds the generated matrix so runs are reproducible.
func NewSeedFlag(ns string) *cli.IntFlag {
	return &cli.IntFlag{
		Name:  "seed",
		Usage: "seed for the generated matrix",
		Sources: cli.NewValueSourceChain(
			yaml.YAML(ns+"."+"seed", altsrc.StringSourcer(cfg.Source)),
			yaml.YAML("seed", altsrc.StringSourcer(cfg.Source)),
		),
		Value: 1,
	}
}
