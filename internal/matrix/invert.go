// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package matrix

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNotSquare is returned when inversion is asked of a non-square matrix.
	ErrNotSquare = errors.New("matrix is not square")

	// ErrSingular is returned when the matrix has no inverse.
	ErrSingular = errors.New("matrix is singular")
)

// Invert returns the inverse of a. It fails with ErrNotSquare or ErrSingular;
// a merely ill-conditioned (but representable) inverse is accepted. Pure and
// deterministic — the same input always yields the same result or the same
// error.
func Invert(a *mat.Dense) (*mat.Dense, error) {
	r, c := a.Dims()
	if r != c {
		return nil, fmt.Errorf("invert %dx%d: %w", r, c, ErrNotSquare)
	}

	var inv mat.Dense
	if err := inv.Inverse(a); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) && !math.IsInf(float64(cond), 1) {
			// Near-singular: gonum flags it but the inverse is usable.
			return &inv, nil
		}
		return nil, fmt.Errorf("invert %dx%d: %w", r, c, ErrSingular)
	}

	return &inv, nil
}

// InvertWithCond is Invert with a solver tolerance: inversion is rejected
// when the condition number estimate (2-norm) exceeds maxCond, even if gonum
// would have produced a result.
func InvertWithCond(a *mat.Dense, maxCond float64) (*mat.Dense, error) {
	r, c := a.Dims()
	if r != c {
		return nil, fmt.Errorf("invert %dx%d: %w", r, c, ErrNotSquare)
	}

	if cond := mat.Cond(a, 2); cond > maxCond {
		return nil, fmt.Errorf("condition number %.4g exceeds limit %.4g: %w", cond, maxCond, ErrSingular)
	}

	return Invert(a)
}
