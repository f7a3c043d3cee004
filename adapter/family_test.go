// SPDX-License-Identifier: MIT
package adapter_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/plsviz/adapter"
	"github.com/katalvlaran/plsviz/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseFamily(t *testing.T) {
	for in, want := range map[string]adapter.Family{
		"loadings":     adapter.Loadings,
		" Weights ":    adapter.Weights,
		"ROTATIONS":    adapter.Rotations,
		"\trotations\n": adapter.Rotations,
	} {
		got, err := adapter.ParseFamily(in)
		require.NoError(t, err, "%q", in)
		assert.Equal(t, want, got, "%q", in)
	}

	for _, in := range []string{"", "rotation", "scores", "other"} {
		_, err := adapter.ParseFamily(in)
		require.ErrorIs(t, err, adapter.ErrUnknownFamily, "%q", in)
	}
}

func TestFamilyText(t *testing.T) {
	assert.Equal(t, "weights", adapter.Weights.String())
	assert.Equal(t, "Family(0)", adapter.Family(0).String())
	assert.False(t, adapter.Family(9).Valid())

	var cfg struct {
		X adapter.Family `yaml:"x"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("x: loadings\n"), &cfg))
	assert.Equal(t, adapter.Loadings, cfg.X)
	require.Error(t, yaml.Unmarshal([]byte("x: scores\n"), &cfg))

	out, err := yaml.Marshal(map[string]adapter.Family{"x": adapter.Rotations})
	require.NoError(t, err)
	assert.Equal(t, "x: rotations\n", string(out))

	var f adapter.Family
	require.NoError(t, f.Set("weights"))
	assert.Equal(t, adapter.Weights, f)
	assert.Equal(t, "family", f.Type())
}

func TestSelectLoadingFamily(t *testing.T) {
	m := stubModel{
		xLoadings:  mustDense(t, [][]float64{{1}}),
		yLoadings:  mustDense(t, [][]float64{{2}}),
		xWeights:   mustDense(t, [][]float64{{3}}),
		yWeights:   mustDense(t, [][]float64{{4}}),
		xRotations: mustDense(t, [][]float64{{5}}),
		yRotations: mustDense(t, [][]float64{{6}}),
	}
	first := func(mm matrix.Matrix) float64 {
		v, err := mm.At(0, 0)
		require.NoError(t, err)
		return v
	}

	cases := []struct {
		x, y         adapter.Family
		wantX, wantY float64
	}{
		{adapter.Loadings, adapter.Loadings, 1, 2},
		{adapter.Weights, adapter.Weights, 3, 4},
		{adapter.Rotations, adapter.Rotations, 5, 6},
		{adapter.DefaultXFamily, adapter.DefaultYFamily, 5, 2},
		{adapter.Loadings, adapter.Rotations, 1, 6},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v/%v", tc.x, tc.y), func(t *testing.T) {
			x, y, err := adapter.SelectLoadingFamily(m, tc.x, tc.y)
			require.NoError(t, err)
			assert.Equal(t, tc.wantX, first(x))
			assert.Equal(t, tc.wantY, first(y))
		})
	}
}

func TestSelectLoadingFamilyErrors(t *testing.T) {
	m := stubModel{xLoadings: mustDense(t, [][]float64{{1}}), yLoadings: mustDense(t, [][]float64{{2}})}

	_, _, err := adapter.SelectLoadingFamily(m, adapter.Rotations, adapter.Loadings)
	require.ErrorIs(t, err, adapter.ErrMissingAttribute)
	assert.Contains(t, err.Error(), "x_rotations")

	_, _, err = adapter.SelectLoadingFamily(m, adapter.Loadings, adapter.Weights)
	require.ErrorIs(t, err, adapter.ErrMissingAttribute)
	assert.Contains(t, err.Error(), "y_weights")

	_, _, err = adapter.SelectLoadingFamily(m, adapter.Family(0), adapter.Loadings)
	require.ErrorIs(t, err, adapter.ErrUnknownFamily)
	_, _, err = adapter.SelectLoadingFamily(m, adapter.Loadings, adapter.Family(42))
	require.ErrorIs(t, err, adapter.ErrUnknownFamily)

	_, _, err = adapter.SelectLoadingFamily(nil, adapter.Loadings, adapter.Loadings)
	require.ErrorIs(t, err, adapter.ErrNilModel)
}
