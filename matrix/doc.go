// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric kernels behind the AHP engine.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-only numeric policy.
//   - Linear algebra kernels used by the solvers (Add, Scale, MatVec).
//   - Ratio-scale element-wise kernels (Log, Exp, RowGeometricMeans) that
//     geometric-mean aggregation and weight derivation build on.
//   - Vector helpers (NormalizeL1, Mean) and central validators
//     (ValidateSquare, ValidatePositive, ValidateReciprocal).
//
// Every kernel validates its inputs, allocates a fresh result and leaves the
// operands untouched, so callers can treat matrices as values.
//
// Kernels type-switch on *Dense to walk the flat buffer directly; any other
// Matrix implementation goes through At/Set with identical results.
package matrix
