// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/plsviz/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	var none *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(none), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

func TestValidateSameShape(t *testing.T) {
	a := MustDense(t, 2, 3)
	require.NoError(t, matrix.ValidateSameShape(a, MustDense(t, 2, 3)))
	require.ErrorIs(t, matrix.ValidateSameShape(a, MustDense(t, 3, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape(a, MustDense(t, 2, 2)), matrix.ErrDimensionMismatch)
}

func TestValidateMulCompatible(t *testing.T) {
	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 1)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 1)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, MustDense(t, 2, 1)), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 1), nil), matrix.ErrNilMatrix)
}

func TestValidateIndices(t *testing.T) {
	m := MustDense(t, 4, 3)
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"col in range", matrix.ValidateColIndex(m, 2), nil},
		{"col == cols", matrix.ValidateColIndex(m, 3), matrix.ErrOutOfRange},
		{"col negative", matrix.ValidateColIndex(m, -1), matrix.ErrOutOfRange},
		{"row in range", matrix.ValidateRowIndex(m, 3), nil},
		{"row == rows", matrix.ValidateRowIndex(m, 4), matrix.ErrOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.want == nil {
				require.NoError(t, tc.err)
				return
			}
			require.ErrorIs(t, tc.err, tc.want)
		})
	}
}
