// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package matrix

import (
	"fmt"
	"math/rand"
	"os"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

// FromRows builds a dense matrix from row slices. All rows must have the
// same length and there must be at least one row.
func FromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows")
	}

	cols := len(rows[0])
	if cols == 0 {
		return nil, fmt.Errorf("row 0 is empty")
	}

	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d", i, len(row), cols)
		}
		data = append(data, row...)
	}

	return mat.NewDense(len(rows), cols, data), nil
}

// Rows is the inverse of FromRows, mostly for emitting results.
func Rows(a *mat.Dense) [][]float64 {
	r, c := a.Dims()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			out[i][j] = a.At(i, j)
		}
	}
	return out
}

// Random returns an n×n matrix that is guaranteed invertible: off-diagonal
// entries are drawn from [-1, 1) and each diagonal entry is pushed above the
// absolute sum of its row (strict diagonal dominance). Deterministic for a
// given seed.
func Random(n int, seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))

	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		var rowSum float64
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v := rng.Float64()*2 - 1
			a.Set(i, j, v)
			rowSum += abs(v)
		}
		a.Set(i, i, rowSum+1)
	}
	return a
}

// ReadFile loads a matrix from a YAML file holding a `rows:` list of number
// lists, the same codec the config package uses.
func ReadFile(path string) (*mat.Dense, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read matrix file: %w", err)
	}

	var doc struct {
		Rows [][]float64 `yaml:"rows"`
	}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse matrix file %s: %w", path, err)
	}

	m, err := FromRows(doc.Rows)
	if err != nil {
		return nil, fmt.Errorf("bad matrix in %s: %w", path, err)
	}
	return m, nil
}

// Format renders a matrix for display, one bracketed row per line.
func Format(a *mat.Dense) string {
	return fmt.Sprintf("%.6g", mat.Formatted(a, mat.Squeeze()))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
