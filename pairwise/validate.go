// SPDX-License-Identifier: MIT

package pairwise

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ahp/matrix"
)

// scaleTol absorbs float noise at the scale bounds (1/9 is not exact in binary).
const scaleTol = 1e-12

// IsValidScale reports whether v lies on Saaty's scale [1/9, 9].
// Zero, negatives, NaN and ±Inf are all invalid.
func IsValidScale(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}

	return v >= MinScale-scaleTol && v <= MaxScale+scaleTol
}

// ValidateJudgments rejects judgment sets containing any value outside
// [1/9, 9]. It never clamps. The first offending judgment is reported.
func ValidateJudgments(judgments []Judgment) error {
	for k, jd := range judgments {
		if !IsValidScale(jd.Value) {
			return fmt.Errorf("judgment %d (%s vs %s = %g): %w", k, jd.A, jd.B, jd.Value, ErrJudgmentOutOfScale)
		}
	}

	return nil
}

// ValidateReciprocal checks a[i][i] == 1 and a[i][j]*a[j][i] == 1 within tol.
// Errors wrap matrix.ErrNotReciprocal or matrix.ErrNonPositive.
func (m *Matrix) ValidateReciprocal(tol float64) error {
	if m == nil {
		return ErrNilMatrix
	}

	return matrix.ValidateReciprocal(m.values, tol)
}

// Judgments returns the upper-triangle judgments (i < j) in row order.
// Build(m.Judgments(), m.Criteria()) reproduces any reciprocal matrix whose
// cells are all non-zero.
func (m *Matrix) Judgments() []Judgment {
	n := m.Size()
	out := make([]Judgment, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v, _ := m.values.At(i, j)
			out = append(out, Judgment{A: m.criteria[i], B: m.criteria[j], Value: v})
		}
	}

	return out
}
