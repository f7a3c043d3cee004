// Package model describes the fitted PLS regression model consumed by plsviz.
//
// The package never fits anything: a model is built from matrices computed
// elsewhere (a Python export, a gonum pipeline, a YAML document) and is then
// read-only. FittedModel exposes the attributes the diagnostics need:
//
//	Coef()                      responses × predictors
//	XLoadings(), YLoadings()    variables × components
//	XWeights(),  YWeights()     variables × components
//	XRotations(), YRotations()  variables × components
//
// An accessor returns nil when the model variant does not carry that
// attribute (for example a model exported without rotation vectors).
//
// PLS is the concrete implementation; Document is its on-disk form.
package model
