// SPDX-License-Identifier: MIT
package layout_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/plsviz/layout"
	"github.com/katalvlaran/plsviz/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)
	return m
}

func TestScaleResponses(t *testing.T) {
	pts, err := layout.ScaleResponses(mustDense(t, [][]float64{{0.1, 0.2}}), 0, 1, 2.0)
	require.NoError(t, err)
	require.Len(t, pts, 1)
	assert.InDelta(t, 0.2, pts[0].X, 1e-15)
	assert.InDelta(t, 0.4, pts[0].Y, 1e-15)

	unit, err := layout.ScaleResponses(mustDense(t, [][]float64{{0.1, 0.2}}), 1, 0, layout.DefaultFactor)
	require.NoError(t, err)
	assert.Equal(t, []layout.Point{{X: 0.2, Y: 0.1}}, unit, "swapped pair")

	flipped, err := layout.ScaleResponses(mustDense(t, [][]float64{{0.1, -0.2}}), 0, 1, -1)
	require.NoError(t, err)
	assert.Equal(t, []layout.Point{{X: -0.1, Y: 0.2}}, flipped)

	_, err = layout.ScaleResponses(mustDense(t, [][]float64{{0.1, 0.2}}), 0, 1, math.Inf(1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestProjectPredictors(t *testing.T) {
	x := mustDense(t, [][]float64{
		{0.1, 0.2, 0.3},
		{-0.4, 0.5, -0.6},
	})
	pts, err := layout.ProjectPredictors(x, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []layout.Point{{X: 0.1, Y: 0.3}, {X: -0.4, Y: -0.6}}, pts)

	same, err := layout.ProjectPredictors(x, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []layout.Point{{X: 0.2, Y: 0.2}, {X: 0.5, Y: 0.5}}, same)
}

func TestComponentIndexOutOfRange(t *testing.T) {
	x := mustDense(t, [][]float64{{1, 2, 3}}) // three components
	for _, pair := range [][2]int{{5, 0}, {0, 5}, {-1, 1}, {0, 3}} {
		_, err := layout.ProjectPredictors(x, pair[0], pair[1])
		require.ErrorIs(t, err, layout.ErrIndexOutOfRange, "pair %v", pair)
		_, err = layout.ScaleResponses(x, pair[0], pair[1], 1)
		require.ErrorIs(t, err, layout.ErrIndexOutOfRange, "pair %v", pair)
	}

	_, err := layout.ProjectPredictors(nil, 0, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestLabelAnchor(t *testing.T) {
	for _, y := range []float64{1e-300, 0.01, 0.4, 7} {
		a := layout.LabelAnchor(y)
		assert.Equal(t, layout.AnchorBelow, a, "y=%g", y)
		assert.Equal(t, "below", a.String())
		assert.Equal(t, "bottom", a.Baseline())
	}
	for _, y := range []float64{0, -1e-300, -0.2, -7} {
		a := layout.LabelAnchor(y)
		assert.Equal(t, layout.AnchorAbove, a, "y=%g", y)
		assert.Equal(t, "above", a.String())
		assert.Equal(t, "top", a.Baseline())
	}
}

func TestDefaultAxisLimits(t *testing.T) {
	def := layout.DefaultAxisLimits(nil)
	want := layout.Range{Low: -0.4, High: 0.4}
	assert.Equal(t, layout.Limits{X: want, Y: want}, def)

	explicit := layout.Range{Low: -1.5, High: 2}
	got := layout.DefaultAxisLimits(&explicit)
	assert.Equal(t, explicit, got.X)
	assert.Equal(t, explicit, got.Y)

	odd := layout.Range{Low: 3, High: -3}
	assert.Equal(t, odd, layout.DefaultAxisLimits(&odd).X, "used verbatim")
}

func TestGroupByCategory(t *testing.T) {
	labels := []string{"t2", "t1", "t2", "t3", "t1", "t2"}
	groups := layout.GroupByCategory(labels)
	require.Equal(t, []layout.Group{
		{Label: "t2", Indices: []int{0, 2, 5}},
		{Label: "t1", Indices: []int{1, 4}},
		{Label: "t3", Indices: []int{3}},
	}, groups)

	seen := make(map[int]int)
	for _, g := range groups {
		for _, i := range g.Indices {
			seen[i]++
			assert.Equal(t, g.Label, labels[i])
		}
	}
	require.Len(t, seen, len(labels))
	for i, n := range seen {
		assert.Equal(t, 1, n, "index %d", i)
	}

	assert.Empty(t, layout.GroupByCategory(nil))
}
