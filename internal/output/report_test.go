// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	yaml "gopkg.in/yaml.v2"

	"github.com/staranto/matcache/internal/matrix"
)

// runWithFlags executes fn inside a throwaway cli.Command so flag lookups
// behave as they would in a real command.
func runWithFlags(t *testing.T, args []string, fn func(cmd *cli.Command)) {
	t.Helper()

	cmd := &cli.Command{
		Name: "test",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Value: "table"},
			&cli.BoolFlag{Name: "color"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			fn(c)
			return nil
		},
	}

	require.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
}

func sampleReport() BenchReport {
	return BenchReport{
		Size:       8,
		Iterations: 1000,
		Cached:     2 * time.Millisecond,
		Direct:     200 * time.Millisecond,
		Hits:       999,
		Misses:     1,
	}
}

func TestSpeedup(t *testing.T) {
	r := sampleReport()
	assert.InDelta(t, 100.0, r.Speedup(), 1e-9)

	assert.Equal(t, 0.0, BenchReport{}.Speedup())
}

func TestSpitBenchReport_JSON(t *testing.T) {
	runWithFlags(t, []string{"--output", "json"}, func(cmd *cli.Command) {
		var buf bytes.Buffer
		require.NoError(t, SpitBenchReport(sampleReport(), cmd, &buf))

		var doc map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
		assert.Equal(t, float64(8), doc["size"])
		assert.Equal(t, "2ms", doc["cached"])
		assert.Equal(t, "200ms", doc["direct"])
		assert.Equal(t, "100.0x", doc["speedup"])
	})
}

func TestSpitBenchReport_YAML(t *testing.T) {
	runWithFlags(t, []string{"--output", "yaml"}, func(cmd *cli.Command) {
		var buf bytes.Buffer
		require.NoError(t, SpitBenchReport(sampleReport(), cmd, &buf))

		var doc map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
		assert.Equal(t, 1000, doc["iterations"])
		assert.Equal(t, "100.0x", doc["speedup"])
	})
}

func TestSpitBenchReport_Table(t *testing.T) {
	runWithFlags(t, nil, func(cmd *cli.Command) {
		var buf bytes.Buffer
		require.NoError(t, SpitBenchReport(sampleReport(), cmd, &buf))

		out := buf.String()
		assert.Contains(t, out, "8x8")
		assert.Contains(t, out, "1,000")
		assert.Contains(t, out, "100.0x")
	})
}

func TestSpitMatrix_JSONRoundTrips(t *testing.T) {
	a, err := matrix.FromRows([][]float64{{4, 7}, {2, 6}})
	require.NoError(t, err)

	runWithFlags(t, []string{"--output", "json"}, func(cmd *cli.Command) {
		var buf bytes.Buffer
		require.NoError(t, SpitMatrix(a, cmd, &buf))

		var doc struct {
			Rows [][]float64 `json:"rows"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
		assert.Equal(t, [][]float64{{4, 7}, {2, 6}}, doc.Rows)
	})
}

func TestSpitMatrix_Table(t *testing.T) {
	a, err := matrix.FromRows([][]float64{{4, 7}, {2, 6}})
	require.NoError(t, err)

	runWithFlags(t, nil, func(cmd *cli.Command) {
		var buf bytes.Buffer
		require.NoError(t, SpitMatrix(a, cmd, &buf))
		assert.Contains(t, buf.String(), "4")
		assert.Contains(t, buf.String(), "7")
	})
}
