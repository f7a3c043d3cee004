// SPDX-License-Identifier: MIT

package model

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/plsviz/matrix"
)

// Gonum holds the attributes of a fitted model as gonum matrices, the form
// Go fitting code built on gonum/mat produces. Nil attributes are absent.
type Gonum struct {
	Name      string
	Coef      mat.Matrix // responses × predictors
	Intercept []float64

	XLoadings, YLoadings   mat.Matrix
	XWeights, YWeights     mat.Matrix
	XRotations, YRotations mat.Matrix
}

// Model copies g into a PLS model; shape rules are those of New.
//
// Errors:
//   - ErrNilCoefficients when Coef is nil.
//   - matrix.ErrInvalidDimensions, matrix.ErrNaNInf from the copy.
//   - matrix.ErrDimensionMismatch from New.
func (g Gonum) Model() (*PLS, error) {
	if g.Coef == nil {
		return nil, fmt.Errorf("model.Gonum: %w", ErrNilCoefficients)
	}
	coef, err := matrix.FromGonum(g.Coef)
	if err != nil {
		return nil, fmt.Errorf("model.Gonum: coef: %w", err)
	}
	opts := []Option{WithName(g.Name)}
	if g.Intercept != nil {
		opts = append(opts, WithIntercept(g.Intercept))
	}
	for _, a := range []struct {
		name string
		src  mat.Matrix
		with func(matrix.Matrix) Option
	}{
		{"x_loadings", g.XLoadings, WithXLoadings},
		{"y_loadings", g.YLoadings, WithYLoadings},
		{"x_weights", g.XWeights, WithXWeights},
		{"y_weights", g.YWeights, WithYWeights},
		{"x_rotations", g.XRotations, WithXRotations},
		{"y_rotations", g.YRotations, WithYRotations},
	} {
		if a.src == nil {
			continue
		}
		m, err := matrix.FromGonum(a.src)
		if err != nil {
			return nil, fmt.Errorf("model.Gonum: %s: %w", a.name, err)
		}
		opts = append(opts, a.with(m))
	}

	return New(coef, opts...)
}

// Gonum returns copies of the model attributes as gonum matrices.
func (p *PLS) Gonum() (Gonum, error) {
	g := Gonum{Name: p.name, Intercept: append([]float64(nil), p.intercept...)}
	for _, a := range []struct {
		src matrix.Matrix
		dst *mat.Matrix
	}{
		{p.coef, &g.Coef},
		{p.xLoadings, &g.XLoadings},
		{p.yLoadings, &g.YLoadings},
		{p.xWeights, &g.XWeights},
		{p.yWeights, &g.YWeights},
		{p.xRotations, &g.XRotations},
		{p.yRotations, &g.YRotations},
	} {
		if a.src == nil {
			continue
		}
		d, err := toDense(a.src)
		if err != nil {
			return Gonum{}, fmt.Errorf("model.Gonum: %w", err)
		}
		*a.dst = d.ToGonum()
	}

	return g, nil
}

// toDense returns m itself when it is a *matrix.Dense, else a row copy.
func toDense(m matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d, nil
	}
	rows, err := matrix.ToRows(m)
	if err != nil {
		return nil, err
	}
	return matrix.NewDenseFrom(rows)
}
