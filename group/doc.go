// SPDX-License-Identifier: MIT

// Package group combines the comparison matrices of several evaluators into
// one group matrix (aggregation of individual judgments, AIJ) or combines
// their solved priority vectors (aggregation of individual priorities, AIP).
//
// Methods:
//   - GeometricMean: cell-wise geometric mean. The only mean that keeps a
//     reciprocal input reciprocal, and the default.
//   - ArithmeticMean: cell-wise mean; the diagonal is reset to 1 but the
//     result is generally not reciprocal.
//   - WeightedGeometricMean: evaluator-weighted geometric mean; weights are
//     normalized to sum 1.
//
// Label sets are matched order-insensitively: every matrix is re-indexed
// into the label order of the first one before cells are combined.
package group
