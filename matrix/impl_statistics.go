// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the coefficient of determination (R²) used by the
//     predicted-vs-observed diagnostics.
//
// Exposed API:
//   - R2Score(y, yHat)   -> score          // uniform average of per-column R²
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Per-column R² is delegated to gonum's stat.RSquaredFrom.

package matrix

import (
	"gonum.org/v1/gonum/stat"
)

const opR2Score = "R2Score"

// R2Score returns the coefficient of determination of yHat against y,
// averaged uniformly over columns (one column per response).
//
// Implementation:
//   - Stage 1: Validate both operands (non-nil, same shape, at least two rows).
//   - Stage 2: For each column compute R² with stat.RSquaredFrom.
//   - Stage 3: Average the per-column scores.
//
// Behavior highlights:
//   - A constant column of y scores 1 when predicted exactly and 0 otherwise
//     (the total sum of squares is zero, so the ratio is undefined).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shape), ErrBadShape (fewer than two rows).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func R2Score(y, yHat Matrix) (float64, error) {
	if err := ValidateNotNil(y); err != nil {
		return 0, matrixErrorf(opR2Score, err)
	}
	if err := ValidateNotNil(yHat); err != nil {
		return 0, matrixErrorf(opR2Score, err)
	}
	if err := ValidateSameShape(y, yHat); err != nil {
		return 0, matrixErrorf(opR2Score, err)
	}
	if y.Rows() < 2 {
		return 0, matrixErrorf(opR2Score, ErrBadShape)
	}

	var total float64
	for j := 0; j < y.Cols(); j++ {
		values, err := Column(y, j)
		if err != nil {
			return 0, matrixErrorf(opR2Score, err)
		}
		estimates, err := Column(yHat, j)
		if err != nil {
			return 0, matrixErrorf(opR2Score, err)
		}
		total += columnR2(estimates, values)
	}

	return total / float64(y.Cols()), nil
}

// columnR2 scores one response column, handling the zero-variance case.
func columnR2(estimates, values []float64) float64 {
	if stat.Variance(values, nil) == 0 {
		for i := range values {
			if estimates[i] != values[i] {
				return 0
			}
		}
		return 1
	}

	return stat.RSquaredFrom(estimates, values, nil)
}
