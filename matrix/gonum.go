// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Models fitted elsewhere in Go usually hold their attributes as mat.Matrix;
// FromGonum copies them into a Dense so the adapters can consume them, and
// ToGonum hands a Dense back for further numeric work.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const ctxFromGonum = "FromGonum"

// FromGonum copies any gonum mat.Matrix into a new Dense.
// Errors:
//   - ErrNilMatrix when src is nil.
//   - ErrInvalidDimensions for empty matrices.
//   - ErrNaNInf when src holds a non-finite value.
//
// Complexity: O(r*c).
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, fmt.Errorf("%s: %w", ctxFromGonum, ErrNilMatrix)
	}
	r, c := src.Dims()
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromGonum, ErrInvalidDimensions)
	}
	// DenseCopyOf resolves views (transposes, slices) into a packed buffer.
	m, err := NewDenseData(r, c, mat.DenseCopyOf(src).RawMatrix().Data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromGonum, err)
	}

	return m, nil
}

// ToGonum returns a gonum *mat.Dense holding a copy of m's data.
// Complexity: O(r*c).
func (m *Dense) ToGonum() *mat.Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data) // gonum takes ownership of the slice

	return mat.NewDense(m.r, m.c, cp)
}
