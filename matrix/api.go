// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points composed from kernels.
//   - Avoid logic duplication: each facade delegates to canonical kernels.
//
// Determinism & Policy:
//   - Facades never change loop orders or numeric policy of underlying kernels.

package matrix

const opWeightedGeoMean = "WeightedGeometricMean"

// NewOnes returns the n×n all-ones matrix: the neutral comparison table in
// which every pair of items is judged equally important.
// Complexity: O(n^2).
func NewOnes(n int) (*Dense, error) {
	return NewFilled(n, n, 1.0)
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// WeightedGeometricMean returns the cell-wise weighted geometric mean
// out[i,j] = Π_k ms[k][i,j]^w[k], computed as exp(Σ_k w[k]·ln ms[k]).
// Composition: Log → Scale → Add (accumulate) → Exp.
//
// Contract:
//   - len(ms) == len(w) > 0, identical shapes, strictly positive entries.
//   - Weights are used as given; callers normalize them when they need a mean.
//
// Complexity: O(k·r·c).
func WeightedGeometricMean(ms []Matrix, w []float64) (Matrix, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opWeightedGeoMean, ErrInvalidDimensions)
	}
	if err := ValidateVecLen(w, len(ms)); err != nil {
		return nil, matrixErrorf(opWeightedGeoMean, err)
	}
	var acc Matrix
	for k, m := range ms {
		lg, err := Log(m)
		if err != nil {
			return nil, matrixErrorf(opWeightedGeoMean, err)
		}
		term, err := Scale(lg, w[k])
		if err != nil {
			return nil, matrixErrorf(opWeightedGeoMean, err)
		}
		if acc == nil {
			acc = term
			continue
		}
		if acc, err = Add(acc, term); err != nil {
			return nil, matrixErrorf(opWeightedGeoMean, err)
		}
	}

	return Exp(acc)
}

// ArithmeticMean returns the cell-wise mean (1/k)·Σ_k ms[k].
// Composition: Add (accumulate) → Scale.
// Complexity: O(k·r·c).
func ArithmeticMean(ms []Matrix) (Matrix, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf("ArithmeticMean", ErrInvalidDimensions)
	}
	acc := ms[0]
	if err := ValidateNotNil(acc); err != nil {
		return nil, matrixErrorf("ArithmeticMean", err)
	}
	var err error
	for _, m := range ms[1:] {
		if acc, err = Add(acc, m); err != nil {
			return nil, matrixErrorf("ArithmeticMean", err)
		}
	}

	return Scale(acc, 1.0/float64(len(ms)))
}
