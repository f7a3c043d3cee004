// SPDX-License-Identifier: MIT
package adapter_test

import (
	"testing"

	"github.com/katalvlaran/plsviz/adapter"
	"github.com/katalvlaran/plsviz/matrix"
	"github.com/katalvlaran/plsviz/model"
	"github.com/stretchr/testify/require"
)

// stubModel exposes whatever matrices a test sets; unset ones stay nil.
type stubModel struct {
	coef                   matrix.Matrix
	xLoadings, yLoadings   matrix.Matrix
	xWeights, yWeights     matrix.Matrix
	xRotations, yRotations matrix.Matrix
}

func (s stubModel) Coef() matrix.Matrix       { return s.coef }
func (s stubModel) XLoadings() matrix.Matrix  { return s.xLoadings }
func (s stubModel) YLoadings() matrix.Matrix  { return s.yLoadings }
func (s stubModel) XWeights() matrix.Matrix   { return s.xWeights }
func (s stubModel) YWeights() matrix.Matrix   { return s.yWeights }
func (s stubModel) XRotations() matrix.Matrix { return s.xRotations }
func (s stubModel) YRotations() matrix.Matrix { return s.yRotations }

var _ model.FittedModel = stubModel{}

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)
	return m
}

// abcModel is the three-predictor, two-response fixture used across tests.
func abcModel(t *testing.T) (*model.PLS, adapter.VariableSet) {
	t.Helper()
	p, err := model.New(mustDense(t, [][]float64{{1, -2, 3}, {4, 5, -6}}))
	require.NoError(t, err)
	return p, adapter.VariableSet{Predictors: []string{"A", "B", "C"}, Responses: []string{"y1", "y2"}}
}
