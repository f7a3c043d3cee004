// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/plsviz/matrix"
)

// Document is the on-disk form of a fitted model, as exported from the
// fitting environment. YAML and JSON documents decode alike.
//
//	name: wine
//	predictors: [alcohol, acidity, sugar]
//	responses: [quality]
//	coef: [[0.4, -0.2, 0.1]]
//	x_rotations: [[0.6, 0.1], [-0.3, 0.7], [0.2, -0.1]]
//	y_loadings: [[0.8, 0.2]]
//	variables:
//	  alcohol: {type: chemical, description: "% by volume"}
//	train: {x: [[...]], y: [[...]]}
type Document struct {
	Name       string      `yaml:"name" json:"name"`
	Predictors []string    `yaml:"predictors" json:"predictors"`
	Responses  []string    `yaml:"responses" json:"responses"`
	Coef       [][]float64 `yaml:"coef" json:"coef"`
	Intercept  []float64   `yaml:"intercept,omitempty" json:"intercept,omitempty"`

	XLoadings  [][]float64 `yaml:"x_loadings,omitempty" json:"x_loadings,omitempty"`
	YLoadings  [][]float64 `yaml:"y_loadings,omitempty" json:"y_loadings,omitempty"`
	XWeights   [][]float64 `yaml:"x_weights,omitempty" json:"x_weights,omitempty"`
	YWeights   [][]float64 `yaml:"y_weights,omitempty" json:"y_weights,omitempty"`
	XRotations [][]float64 `yaml:"x_rotations,omitempty" json:"x_rotations,omitempty"`
	YRotations [][]float64 `yaml:"y_rotations,omitempty" json:"y_rotations,omitempty"`

	Variables map[string]Variable `yaml:"variables,omitempty" json:"variables,omitempty"`

	Train *SampleData `yaml:"train,omitempty" json:"train,omitempty"`
	Test  *SampleData `yaml:"test,omitempty" json:"test,omitempty"`
}

// Variable carries the optional display metadata of one variable.
type Variable struct {
	Type        string `yaml:"type,omitempty" json:"type,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// SampleData is a raw observed sample (rows of predictors and responses).
type SampleData struct {
	X [][]float64 `yaml:"x" json:"x"`
	Y [][]float64 `yaml:"y" json:"y"`
}

// Decode reads one document from r. Unknown keys are rejected so typos in
// attribute names (x_rotation vs x_rotations) do not silently drop data.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("model.Decode: empty input: %w", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("model.Decode: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Load opens path and decodes it.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("model.Load: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("model.Load %s: %w", path, err)
	}

	return doc, nil
}

// Validate checks the structural minimum: names on both sides and coefficients.
// Shape agreement is checked when the model is built.
func (d *Document) Validate() error {
	switch {
	case len(d.Predictors) == 0:
		return fmt.Errorf("model.Validate: no predictors: %w", ErrInvalidDocument)
	case len(d.Responses) == 0:
		return fmt.Errorf("model.Validate: no responses: %w", ErrInvalidDocument)
	case len(d.Coef) == 0:
		return fmt.Errorf("model.Validate: no coef: %w", ErrInvalidDocument)
	}
	for name, s := range map[string]*SampleData{"train": d.Train, "test": d.Test} {
		if s != nil && len(s.X) != len(s.Y) {
			return fmt.Errorf("model.Validate: %s has %d x rows and %d y rows: %w",
				name, len(s.X), len(s.Y), ErrInvalidDocument)
		}
	}

	return nil
}

// Model builds the PLS model described by the document.
func (d *Document) Model() (*PLS, error) {
	coef, err := matrix.NewDenseFrom(d.Coef)
	if err != nil {
		return nil, fmt.Errorf("model.Document: coef: %w", err)
	}
	opts := []Option{WithName(d.Name)}
	if d.Intercept != nil {
		opts = append(opts, WithIntercept(d.Intercept))
	}
	for _, a := range []struct {
		name string
		rows [][]float64
		with func(matrix.Matrix) Option
	}{
		{"x_loadings", d.XLoadings, WithXLoadings},
		{"y_loadings", d.YLoadings, WithYLoadings},
		{"x_weights", d.XWeights, WithXWeights},
		{"y_weights", d.YWeights, WithYWeights},
		{"x_rotations", d.XRotations, WithXRotations},
		{"y_rotations", d.YRotations, WithYRotations},
	} {
		if len(a.rows) == 0 {
			continue // attribute absent in this model variant
		}
		m, err := matrix.NewDenseFrom(a.rows)
		if err != nil {
			return nil, fmt.Errorf("model.Document: %s: %w", a.name, err)
		}
		opts = append(opts, a.with(m))
	}

	return New(coef, opts...)
}

// Types returns the variable → type lookup (entries without a type are omitted).
func (d *Document) Types() map[string]string {
	if len(d.Variables) == 0 {
		return nil
	}
	out := make(map[string]string, len(d.Variables))
	for name, v := range d.Variables {
		if v.Type != "" {
			out[name] = v.Type
		}
	}
	return out
}

// Descriptions returns the variable → description lookup.
func (d *Document) Descriptions() map[string]string {
	if len(d.Variables) == 0 {
		return nil
	}
	out := make(map[string]string, len(d.Variables))
	for name, v := range d.Variables {
		if v.Description != "" {
			out[name] = v.Description
		}
	}
	return out
}

// Sample converts raw sample data into matrices; a nil receiver yields (nil, nil).
func (s *SampleData) Sample() (*Sample, error) {
	if s == nil {
		return nil, nil
	}
	x, err := matrix.NewDenseFrom(s.X)
	if err != nil {
		return nil, fmt.Errorf("model.Sample: x: %w", err)
	}
	y, err := matrix.NewDenseFrom(s.Y)
	if err != nil {
		return nil, fmt.Errorf("model.Sample: y: %w", err)
	}
	if x.Rows() != y.Rows() {
		return nil, fmt.Errorf("model.Sample: %w", matrix.ErrDimensionMismatch)
	}

	return &Sample{X: x, Y: y}, nil
}
