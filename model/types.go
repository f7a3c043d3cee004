// SPDX-License-Identifier: MIT

package model

import "github.com/katalvlaran/plsviz/matrix"

// FittedModel is the read-only view of a fitted PLS model.
// Implementations must not hand out their internal storage; callers may
// mutate what they receive.
type FittedModel interface {
	// Coef returns the regression coefficients, shaped responses × predictors.
	Coef() matrix.Matrix

	// XLoadings returns the predictor loadings (predictors × components) or nil.
	XLoadings() matrix.Matrix
	// YLoadings returns the response loadings (responses × components) or nil.
	YLoadings() matrix.Matrix

	// XWeights returns the predictor weights (predictors × components) or nil.
	XWeights() matrix.Matrix
	// YWeights returns the response weights (responses × components) or nil.
	YWeights() matrix.Matrix

	// XRotations returns the predictor rotations (predictors × components) or nil.
	XRotations() matrix.Matrix
	// YRotations returns the response rotations (responses × components) or nil.
	YRotations() matrix.Matrix
}

// Predictor maps a block of predictor rows (samples × predictors) to
// predicted responses (samples × responses).
type Predictor interface {
	Predict(X matrix.Matrix) (matrix.Matrix, error)
}

// Sample pairs observed predictors with observed responses, row by row.
type Sample struct {
	X matrix.Matrix // samples × predictors
	Y matrix.Matrix // samples × responses
}
