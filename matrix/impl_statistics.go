// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Vector statistics shared by the solvers: L1 normalization of priority
//     vectors, arithmetic means, and element-wise ratio means.
//
// Determinism & Performance:
//   - Fixed left-to-right traversal; one allocation per call.

package matrix

import "math"

const opMeanRatio = "MeanRatio"

// NormalizeL1 returns v scaled so that Σ|v_i| == 1, plus the original L1 norm.
// Degenerate vectors (norm == 0) are rejected with ErrZeroSum rather than
// returned unchanged: a priority vector must be a distribution.
//
// Errors:
//   - ErrNilMatrix for nil input, ErrNaNInf for non-finite entries, ErrZeroSum.
//
// Complexity:
//   - Time O(n), Space O(n).
func NormalizeL1(v []float64) ([]float64, float64, error) {
	if v == nil {
		return nil, 0, matrixErrorf(opNormalize, ErrNilMatrix)
	}
	norm := NormZero
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, 0, matrixErrorf(opNormalize, ErrNaNInf)
		}
		norm += math.Abs(x)
	}
	if norm == NormZero {
		return nil, 0, matrixErrorf(opNormalize, ErrZeroSum)
	}
	out := make([]float64, len(v))
	inv := 1.0 / norm
	for i, x := range v {
		out[i] = x * inv
	}

	return out, norm, nil
}

// NormZero is the additive identity for norm accumulations.
const NormZero = 0.0

// Mean returns the arithmetic mean of v, or 0 for an empty vector.
func Mean(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	acc := ZeroSum
	for _, x := range v {
		acc += x
	}

	return acc / float64(len(v))
}

// MeanRatio returns mean_i(num[i]/den[i]) over indices where den[i] != 0.
// It is the λmax estimator used with geometric-mean weights:
// λ ≈ mean((A·w)_i / w_i).
//
// Errors:
//   - ErrDimensionMismatch when lengths differ, ErrZeroSum when every den[i] is 0.
func MeanRatio(num, den []float64) (float64, error) {
	if err := ValidateVecLen(num, len(den)); err != nil {
		return 0, matrixErrorf(opMeanRatio, err)
	}
	var (
		acc float64
		cnt int
	)
	for i := range num {
		if den[i] == 0 {
			continue
		}
		acc += num[i] / den[i]
		cnt++
	}
	if cnt == 0 {
		return 0, matrixErrorf(opMeanRatio, ErrZeroSum)
	}

	return acc / float64(cnt), nil
}
