// Package adapter reshapes the numeric attributes of a fitted PLS model into
// plot-ready tables keyed by variable.
//
// The adapter package provides:
//
//   - VariableSet, the ordered predictor/response names that index the model.
//   - Metadata / MapMetadata, optional per-variable type and description
//     lookups with the "Unknown" / "Variable" fallbacks.
//   - ExtractCoefficients, SortByAbs, CoefficientTable(s): one response row of
//     the coefficient matrix as (name, value) pairs or as a column table.
//   - Family, ParseFamily, SelectLoadingFamily: the tagged selector for the
//     loadings / weights / rotations matrices of each block.
//
// Nothing is cached: every call reads the model afresh and returns new slices.
// Failures are sentinels (ErrShapeMismatch, ErrIndexOutOfRange,
// ErrMissingAttribute, ErrUnknownFamily, ErrNilModel) wrapped with the
// operation name; match with errors.Is.
package adapter
