// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/plsviz/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestGonumRoundTrip(t *testing.T) {
	src := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	d, err := matrix.FromGonum(src)
	require.NoError(t, err)
	require.Equal(t, 2, d.Rows())
	require.Equal(t, 3, d.Cols())
	v, err := d.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	// Transposed gonum views are copied element by element.
	dt, err := matrix.FromGonum(src.T())
	require.NoError(t, err)
	v, err = dt.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	back := d.ToGonum()
	require.True(t, mat.Equal(src, back))

	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.FromGonum(&mat.Dense{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromGonum(mat.NewDense(1, 2, []float64{1, math.NaN()}))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
