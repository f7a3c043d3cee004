// SPDX-License-Identifier: MIT

package model

import (
	"fmt"

	"github.com/katalvlaran/plsviz/matrix"
)

const opNew = "model.New"

// Option configures optional attributes of a PLS model.
type Option func(*PLS)

// WithName labels the model (used in figure titles and logs).
func WithName(name string) Option { return func(p *PLS) { p.name = name } }

// WithIntercept sets the per-response intercept added by Predict.
func WithIntercept(intercept []float64) Option {
	return func(p *PLS) { p.intercept = append([]float64(nil), intercept...) }
}

// WithXLoadings attaches the predictor loadings.
func WithXLoadings(m matrix.Matrix) Option { return func(p *PLS) { p.xLoadings = m } }

// WithYLoadings attaches the response loadings.
func WithYLoadings(m matrix.Matrix) Option { return func(p *PLS) { p.yLoadings = m } }

// WithXWeights attaches the predictor weights.
func WithXWeights(m matrix.Matrix) Option { return func(p *PLS) { p.xWeights = m } }

// WithYWeights attaches the response weights.
func WithYWeights(m matrix.Matrix) Option { return func(p *PLS) { p.yWeights = m } }

// WithXRotations attaches the predictor rotations.
func WithXRotations(m matrix.Matrix) Option { return func(p *PLS) { p.xRotations = m } }

// WithYRotations attaches the response rotations.
func WithYRotations(m matrix.Matrix) Option { return func(p *PLS) { p.yRotations = m } }

// PLS is an immutable fitted PLS regression model.
// All matrices are cloned on the way in and on the way out.
type PLS struct {
	name      string
	coef      matrix.Matrix // responses × predictors
	intercept []float64     // len == responses, nil means zero

	xLoadings, yLoadings   matrix.Matrix
	xWeights, yWeights     matrix.Matrix
	xRotations, yRotations matrix.Matrix
}

// Compile-time assertions.
var (
	_ FittedModel = (*PLS)(nil)
	_ Predictor   = (*PLS)(nil)
)

// New builds a PLS model around coef (responses × predictors).
//
// Implementation:
//   - Stage 1: apply options, reject a nil coefficient matrix. Typed-nil
//     attributes are treated as absent.
//   - Stage 2: check every attached matrix against the coefficient shape:
//     x-side rows == predictors, y-side rows == responses, and one shared
//     component count across all families.
//   - Stage 3: clone everything so the caller keeps ownership of its inputs.
//
// Errors:
//   - ErrNilCoefficients; matrix.ErrDimensionMismatch (wrapped with the attribute name).
func New(coef matrix.Matrix, opts ...Option) (*PLS, error) {
	if matrix.ValidateNotNil(coef) != nil {
		return nil, fmt.Errorf("%s: %w", opNew, ErrNilCoefficients)
	}
	p := &PLS{coef: coef}
	for _, apply := range opts {
		if apply != nil {
			apply(p)
		}
	}
	// a nil *Dense attribute counts as absent
	for _, m := range []*matrix.Matrix{&p.xLoadings, &p.yLoadings, &p.xWeights, &p.yWeights, &p.xRotations, &p.yRotations} {
		if matrix.ValidateNotNil(*m) != nil {
			*m = nil
		}
	}

	responses, predictors := coef.Rows(), coef.Cols()
	if p.intercept != nil && len(p.intercept) != responses {
		return nil, fmt.Errorf("%s: intercept has %d values for %d responses: %w",
			opNew, len(p.intercept), responses, matrix.ErrDimensionMismatch)
	}

	components := -1
	for _, a := range []struct {
		name string
		m    matrix.Matrix
		rows int
	}{
		{"x_loadings", p.xLoadings, predictors},
		{"y_loadings", p.yLoadings, responses},
		{"x_weights", p.xWeights, predictors},
		{"y_weights", p.yWeights, responses},
		{"x_rotations", p.xRotations, predictors},
		{"y_rotations", p.yRotations, responses},
	} {
		if a.m == nil {
			continue
		}
		if a.m.Rows() != a.rows {
			return nil, fmt.Errorf("%s: %s has %d rows, want %d: %w",
				opNew, a.name, a.m.Rows(), a.rows, matrix.ErrDimensionMismatch)
		}
		if components >= 0 && a.m.Cols() != components {
			return nil, fmt.Errorf("%s: %s has %d components, want %d: %w",
				opNew, a.name, a.m.Cols(), components, matrix.ErrDimensionMismatch)
		}
		components = a.m.Cols()
	}

	p.coef = coef.Clone()
	p.xLoadings, p.yLoadings = cloneOrNil(p.xLoadings), cloneOrNil(p.yLoadings)
	p.xWeights, p.yWeights = cloneOrNil(p.xWeights), cloneOrNil(p.yWeights)
	p.xRotations, p.yRotations = cloneOrNil(p.xRotations), cloneOrNil(p.yRotations)

	return p, nil
}

// cloneOrNil keeps "absent" absent.
func cloneOrNil(m matrix.Matrix) matrix.Matrix {
	if m == nil {
		return nil
	}
	return m.Clone()
}

// Name returns the model label ("" when unset).
func (p *PLS) Name() string { return p.name }

// Predictors returns the number of predictor variables.
func (p *PLS) Predictors() int { return p.coef.Cols() }

// Responses returns the number of response variables.
func (p *PLS) Responses() int { return p.coef.Rows() }

// Components returns the latent component count, or 0 when no loading family is attached.
func (p *PLS) Components() int {
	for _, m := range []matrix.Matrix{p.xLoadings, p.yLoadings, p.xWeights, p.yWeights, p.xRotations, p.yRotations} {
		if m != nil {
			return m.Cols()
		}
	}
	return 0
}

// Coef implements FittedModel.
func (p *PLS) Coef() matrix.Matrix { return p.coef.Clone() }

// XLoadings implements FittedModel.
func (p *PLS) XLoadings() matrix.Matrix { return cloneOrNil(p.xLoadings) }

// YLoadings implements FittedModel.
func (p *PLS) YLoadings() matrix.Matrix { return cloneOrNil(p.yLoadings) }

// XWeights implements FittedModel.
func (p *PLS) XWeights() matrix.Matrix { return cloneOrNil(p.xWeights) }

// YWeights implements FittedModel.
func (p *PLS) YWeights() matrix.Matrix { return cloneOrNil(p.yWeights) }

// XRotations implements FittedModel.
func (p *PLS) XRotations() matrix.Matrix { return cloneOrNil(p.xRotations) }

// YRotations implements FittedModel.
func (p *PLS) YRotations() matrix.Matrix { return cloneOrNil(p.yRotations) }

// Predict returns ŷ = X·Bᵀ + intercept for X shaped samples × predictors.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (X.Cols() != predictors).
//
// Complexity: O(n·p·q).
func (p *PLS) Predict(X matrix.Matrix) (matrix.Matrix, error) {
	bt, err := matrix.Transpose(p.coef)
	if err != nil {
		return nil, fmt.Errorf("model.Predict: %w", err)
	}
	yHat, err := matrix.Mul(X, bt)
	if err != nil {
		return nil, fmt.Errorf("model.Predict: %w", err)
	}
	if p.intercept == nil {
		return yHat, nil
	}

	var v float64
	for i := 0; i < yHat.Rows(); i++ {
		for j, b0 := range p.intercept {
			if v, err = yHat.At(i, j); err != nil {
				return nil, fmt.Errorf("model.Predict: %w", err)
			}
			if err = yHat.Set(i, j, v+b0); err != nil {
				return nil, fmt.Errorf("model.Predict: %w", err)
			}
		}
	}

	return yHat, nil
}
