// SPDX-License-Identifier: MIT
// Package: layout
//
// Purpose:
//   - Project predictor rows and scaled response rows onto a pair of latent
//     components.
//
// Exposed API:
//   - ProjectPredictors(x, idx1, idx2)        -> []Point // (x[i,idx1], x[i,idx2])
//   - ScaleResponses(y, idx1, idx2, factor)   -> []Point // factor·(y[i,idx1], y[i,idx2])

package layout

import (
	"fmt"

	"github.com/katalvlaran/plsviz/matrix"
)

// DefaultFactor leaves response vectors at their loading length.
const DefaultFactor = 1.0

// Point is a 2D coordinate in component space.
type Point struct {
	X, Y float64
}

// validatePair rejects nil matrices and component indices outside [0, cols).
func validatePair(op string, m matrix.Matrix, idx1, idx2 int) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	for _, idx := range [2]int{idx1, idx2} {
		if err := matrix.ValidateColIndex(m, idx); err != nil {
			return fmt.Errorf("%s: component %d: %w", op, idx, err)
		}
	}
	return nil
}

// pair reads columns idx1/idx2 of every row, scaled by factor.
func pair(op string, m matrix.Matrix, idx1, idx2 int, factor float64) ([]Point, error) {
	if err := validatePair(op, m, idx1, idx2); err != nil {
		return nil, err
	}
	if factor != 1 {
		var err error
		if m, err = matrix.Scale(m, factor); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	xs, err := matrix.Column(m, idx1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	ys, err := matrix.Column(m, idx2)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pts := make([]Point, len(xs))
	for i := range pts {
		pts[i] = Point{X: xs[i], Y: ys[i]}
	}
	return pts, nil
}

// ProjectPredictors returns one point per row of x (predictors × components)
// taken from components idx1 and idx2 (0-based).
//
// Errors:
//   - matrix.ErrNilMatrix; ErrIndexOutOfRange when idx1 or idx2 is negative
//     or not below x.Cols().
//
// Complexity: O(p).
func ProjectPredictors(x matrix.Matrix, idx1, idx2 int) ([]Point, error) {
	return pair("ProjectPredictors", x, idx1, idx2, 1)
}

// ScaleResponses returns factor·(y[i,idx1], y[i,idx2]) for every response row.
// The factor changes only the drawn length, never the model.
//
// Errors: as ProjectPredictors.
func ScaleResponses(y matrix.Matrix, idx1, idx2 int, factor float64) ([]Point, error) {
	return pair("ScaleResponses", y, idx1, idx2, factor)
}
