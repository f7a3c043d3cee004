// SPDX-License-Identifier: MIT
package layout_test

import (
	"testing"

	"github.com/katalvlaran/plsviz/adapter"
	"github.com/katalvlaran/plsviz/layout"
	"github.com/katalvlaran/plsviz/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func biplotModel(t *testing.T) (*model.PLS, adapter.VariableSet) {
	t.Helper()
	coef := mustDense(t, [][]float64{{1, -2, 3}, {4, 5, -6}})
	p, err := model.New(coef,
		model.WithXRotations(mustDense(t, [][]float64{{0.1, 0.2, 0.0}, {-0.3, 0.1, 0.0}, {0.2, -0.1, 0.0}})),
		model.WithXLoadings(mustDense(t, [][]float64{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}})),
		model.WithYLoadings(mustDense(t, [][]float64{{0.1, 0.2, 0.0}, {0.3, -0.1, 0.0}})),
	)
	require.NoError(t, err)
	return p, adapter.VariableSet{Predictors: []string{"A", "B", "C"}, Responses: []string{"y1", "y2"}}
}

func TestBuildBiplotDefaults(t *testing.T) {
	m, vars := biplotModel(t)
	meta := adapter.MapMetadata{
		Types:        map[string]string{"A": "t1", "B": "t1", "C": "t2"},
		Descriptions: map[string]string{"y1": "first response"},
	}

	b, err := layout.BuildBiplot(m, vars, meta)
	require.NoError(t, err)

	assert.Equal(t, "PLS component 1", b.XLabel)
	assert.Equal(t, "PLS component 2", b.YLabel)
	assert.Equal(t, [2]adapter.Family{adapter.Rotations, adapter.Loadings}, b.Families)
	assert.Equal(t, layout.DefaultAxisLimits(nil), b.Limits)

	require.Len(t, b.Points, 3)
	assert.Equal(t, layout.PlotPoint{Name: "B", X: -0.3, Y: 0.1, Category: "t1", Description: "Variable"}, b.Points[1])
	assert.Equal(t, []layout.Group{{Label: "t1", Indices: []int{0, 1}}, {Label: "t2", Indices: []int{2}}}, b.Groups)
	assert.Equal(t, []string{"A", "B"}, names(b.GroupPoints(b.Groups[0])))

	require.Len(t, b.Vectors, 2)
	assert.Equal(t, "y1", b.Vectors[0].Name)
	assert.Equal(t, "first response", b.Vectors[0].Description)
	assert.Equal(t, "Unknown", b.Vectors[0].Category)
	assert.Equal(t, layout.AnchorBelow, b.Vectors[0].Anchor)
	assert.Equal(t, layout.AnchorAbove, b.Vectors[1].Anchor)
}

func TestBuildBiplotOptions(t *testing.T) {
	m, vars := biplotModel(t)

	b, err := layout.BuildBiplot(m, vars, nil,
		layout.WithComponents(1, 0),
		layout.WithFactor(-2),
		layout.WithFamilies(adapter.Loadings, adapter.Loadings),
		layout.WithLimits(layout.Range{Low: -5, High: 5}),
	)
	require.NoError(t, err)

	assert.Equal(t, "PLS component 2", b.XLabel)
	assert.Equal(t, "PLS component 1", b.YLabel)
	assert.Equal(t, layout.Range{Low: -5, High: 5}, b.Limits.Y)
	assert.Equal(t, 3.0, b.Points[2].X, "x_loadings selected")

	// y2 is (0.3, -0.1); swapped and scaled by -2 it ends at (0.2, -0.6).
	assert.InDelta(t, 0.2, b.Vectors[1].X, 1e-12)
	assert.InDelta(t, -0.6, b.Vectors[1].Y, 1e-12)
	assert.Equal(t, layout.AnchorAbove, b.Vectors[1].Anchor, "anchor follows the scaled y")
	// y1 is (0.1, 0.2) -> (-0.4, -0.2) -> still above.
	assert.Equal(t, layout.AnchorAbove, b.Vectors[0].Anchor)

	// Without metadata every predictor is its own category.
	require.Len(t, b.Groups, 3)
	for i, g := range b.Groups {
		assert.Equal(t, vars.Predictors[i], g.Label)
		assert.Equal(t, []int{i}, g.Indices)
	}
}

func TestBuildBiplotErrors(t *testing.T) {
	m, vars := biplotModel(t)

	_, err := layout.BuildBiplot(m, vars, nil, layout.WithComponents(0, 5))
	require.ErrorIs(t, err, layout.ErrIndexOutOfRange)

	_, err = layout.BuildBiplot(m, vars, nil, layout.WithFamilies(adapter.Weights, adapter.Loadings))
	require.ErrorIs(t, err, adapter.ErrMissingAttribute)

	_, err = layout.BuildBiplot(m, vars, nil, layout.WithFamilies(adapter.Family(0), adapter.Loadings))
	require.ErrorIs(t, err, adapter.ErrUnknownFamily)

	_, err = layout.BuildBiplot(m, adapter.VariableSet{Predictors: []string{"A"}, Responses: vars.Responses}, nil)
	require.ErrorIs(t, err, adapter.ErrShapeMismatch)

	_, err = layout.BuildBiplot(nil, vars, nil)
	require.ErrorIs(t, err, adapter.ErrNilModel)
}

func names(pts []layout.PlotPoint) []string {
	out := make([]string, len(pts))
	for i, p := range pts {
		out[i] = p.Name
	}
	return out
}
