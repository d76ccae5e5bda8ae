// SPDX-License-Identifier: MIT
// Package matrix: element-wise kernels for ratio-scale matrices.
//
// Purpose:
//   - Log/Exp move comparison tables in and out of the log domain, where a
//     (weighted) geometric mean becomes a (weighted) arithmetic mean.
//   - RowGeometricMeans is the row-wise n-th root of products, computed as
//     exp(mean(log)) to avoid overflow on long rows of 9s.
//   - AllClose is the tolerance comparison used across tests and idempotence checks.
//
// Determinism: fixed i→j traversal; Dense fast paths operate on the flat buffer.

package matrix

import "math"

const (
	opLog       = "Log"
	opExp       = "Exp"
	opRowGeo    = "RowGeometricMeans"
	opAllClose  = "AllClose"
	opRowSums   = "RowSums"
	opNormalize = "NormalizeL1"
)

// Log returns ln(m) element-wise. Every entry must be finite and > 0.
// Errors: ErrNilMatrix, ErrNaNInf, ErrNonPositive.
// Complexity: O(r*c).
func Log(m Matrix) (Matrix, error) {
	if err := ValidatePositive(m); err != nil {
		return nil, matrixErrorf(opLog, err)
	}

	return ewMap(m, math.Log, opLog)
}

// Exp returns e^m element-wise.
// Errors: ErrNilMatrix, ErrNaNInf when a value overflows.
func Exp(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opExp, err)
	}

	return ewMap(m, math.Exp, opExp)
}

// ewMap applies f to a copy of m, honoring the finite-only policy of the copy.
func ewMap(m Matrix, f func(float64) float64, tag string) (Matrix, error) {
	out, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err = out.Apply(func(_, _ int, v float64) float64 { return f(v) }); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return out, nil
}

// toDense returns a *Dense copy of m (Clone fast path for *Dense).
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// RowGeometricMeans returns g[i] = (Π_j m[i,j])^(1/cols) for a positive matrix.
//
// Implementation:
//   - Stage 1: ValidatePositive.
//   - Stage 2: accumulate Σ ln(m[i,j]) per row, then exp(sum/cols).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func RowGeometricMeans(m Matrix) ([]float64, error) {
	if err := ValidatePositive(m); err != nil {
		return nil, matrixErrorf(opRowGeo, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows)
	var (
		i, j int
		v    float64
		acc  float64
	)
	for i = 0; i < rows; i++ {
		acc = ZeroSum
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j) // bounds are guaranteed by the loop
			acc += math.Log(v)
		}
		out[i] = math.Exp(acc / float64(cols))
	}

	return out, nil
}

// RowSums returns r[i] = Σ_j m[i,j] via MatVec with a ones vector.
// Complexity: O(r*c).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	ones := make([]float64, m.Cols())
	for j := range ones {
		ones[j] = 1.0
	}

	return MatVec(m, ones)
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for k := range da.data {
				if math.Abs(da.data[k]-db.data[k]) > atol+rtol*math.Abs(db.data[k]) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	var av, bv float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
