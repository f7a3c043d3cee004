// Package matrix offers the dense numeric storage behind plsviz.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set/Row/Col
//     that never stores NaN or ±Inf.
//   - Thin kernels (Mul, Transpose, Scale, Column, ToRows) used by
//     model prediction and by the biplot geometry.
//   - R2Score for prediction diagnostics.
//   - FromGonum / ToGonum for interop with gonum.org/v1/gonum/mat.
//
// Every failure is reported through a sentinel (ErrOutOfRange,
// ErrDimensionMismatch, ErrNilMatrix, ...) wrapped with call-site context;
// match with errors.Is.
//
// See the examples in this package for usage patterns.
package matrix
