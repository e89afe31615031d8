// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/staranto/matcache/internal/matrix"
)

func TestRunBench_ComputesOncePerLoopStyle(t *testing.T) {
	var calls int32
	transform := func(a *mat.Dense) (*mat.Dense, error) {
		atomic.AddInt32(&calls, 1)
		return matrix.Invert(a)
	}

	src := matrix.Random(4, 1)
	const iterations = 10

	report, err := runBench(src, transform, iterations)
	require.NoError(t, err)

	assert.Equal(t, 4, report.Size)
	assert.Equal(t, iterations, report.Iterations)
	assert.Equal(t, uint64(iterations-1), report.Hits)
	assert.Equal(t, uint64(1), report.Misses)

	// One compute for the memoized loop, one per direct iteration.
	assert.Equal(t, int32(iterations+1), calls)
}

func TestRunBench_SingularSource(t *testing.T) {
	src, err := matrix.FromRows([][]float64{{1, 2}, {2, 4}})
	require.NoError(t, err)

	_, err = runBench(src, matrix.Invert, 3)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestInitApp_Commands(t *testing.T) {
	app, err := InitApp(context.Background(), []string{"matcache", "bench"})
	require.NoError(t, err)

	names := make([]string, 0, len(app.Commands))
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "bench")
	assert.Contains(t, names, "invert")
}
