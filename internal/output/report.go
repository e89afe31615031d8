// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
	"gonum.org/v1/gonum/mat"
	yaml "gopkg.in/yaml.v2"

	"github.com/staranto/matcache/internal/config"
	"github.com/staranto/matcache/internal/matrix"
)

// BenchReport is the outcome of one bench run: the same inversion performed
// n times through the memoizing cell and n times directly.
type BenchReport struct {
	Size       int
	Iterations int
	Cached     time.Duration
	Direct     time.Duration
	Hits       uint64
	Misses     uint64
}

// Speedup is how many times faster the memoized loop ran.
func (r BenchReport) Speedup() float64 {
	if r.Cached <= 0 {
		return 0
	}
	return float64(r.Direct) / float64(r.Cached)
}

// benchDoc is the emission shape for json/yaml, with durations stringified.
type benchDoc struct {
	Size       int    `json:"size" yaml:"size"`
	Iterations int    `json:"iterations" yaml:"iterations"`
	Cached     string `json:"cached" yaml:"cached"`
	Direct     string `json:"direct" yaml:"direct"`
	Speedup    string `json:"speedup" yaml:"speedup"`
	Hits       uint64 `json:"hits" yaml:"hits"`
	Misses     uint64 `json:"misses" yaml:"misses"`
}

// SpitBenchReport emits the report per the --output flag: json, yaml, or the
// default lipgloss table.
func SpitBenchReport(r BenchReport, cmd *cli.Command, w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}

	doc := benchDoc{
		Size:       r.Size,
		Iterations: r.Iterations,
		Cached:     r.Cached.String(),
		Direct:     r.Direct.String(),
		Speedup:    fmt.Sprintf("%.1fx", r.Speedup()),
		Hits:       r.Hits,
		Misses:     r.Misses,
	}

	switch cmd.String("output") {
	case "json":
		out, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, _ = w.Write(append(out, '\n'))
	case "yaml":
		out, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, _ = w.Write(out)
	default:
		rows := [][]string{
			{"matrix", fmt.Sprintf("%dx%d", r.Size, r.Size)},
			{"iterations", humanize.Comma(int64(r.Iterations))},
			{"memoized", r.Cached.String()},
			{"direct", r.Direct.String()},
			{"speedup", doc.Speedup},
			{"hits/misses", fmt.Sprintf("%s / %s",
				humanize.Comma(int64(r.Hits)), humanize.Comma(int64(r.Misses)))},
		}
		TableWriter(rows, cmd, w)
	}

	return nil
}

// SpitMatrix emits a matrix per the --output flag. json/yaml carry a `rows`
// list, the same shape matrix.ReadFile accepts, so output can round-trip
// back in as input.
func SpitMatrix(a *mat.Dense, cmd *cli.Command, w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}

	doc := struct {
		Rows [][]float64 `json:"rows" yaml:"rows"`
	}{Rows: matrix.Rows(a)}

	switch cmd.String("output") {
	case "json":
		out, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal matrix: %w", err)
		}
		_, _ = w.Write(append(out, '\n'))
	case "yaml":
		out, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal matrix: %w", err)
		}
		_, _ = w.Write(out)
	default:
		fmt.Fprintln(w, matrix.Format(a))
	}

	return nil
}

// TableWriter renders key/value rows in a tabular form honoring the color
// option.
func TableWriter(rows [][]string, cmd *cli.Command, w io.Writer) {
	if len(rows) == 0 {
		return
	}

	var (
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if cmd.Bool("color") {
		evenColor, oddColor := getColors("colors")
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			pad, _ := config.GetInt("padding", 2)

			var style lipgloss.Style
			if row%2 == 0 {
				style = evenRowStyle
			} else {
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Rows(rows...)

	fmt.Fprintln(w, t)
}

func getColors(key string) (even string, odd string) {
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}
