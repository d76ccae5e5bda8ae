// SPDX-License-Identifier: MIT

package pairwise

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ahp/matrix"
)

const (
	opBuild       = "Build"
	opNew         = "New"
	opFromWeights = "FromWeights"
)

// Build assembles a reciprocal comparison matrix from judgments.
//
// Implementation:
//   - Stage 1: validate the label set (non-empty, unique); optional strict scale check.
//   - Stage 2: start from the all-ones table (every pair neutral).
//   - Stage 3: for each judgment set a[i][j] = v and a[j][i] = 1/v.
//
// Behavior highlights:
//   - Judgments are applied in order; a later judgment on the same pair wins.
//   - A zero judgment stores 0 with a reciprocal of 1.0. This is a defensive
//     fallback, not a valid AHP value; WithStrictScale rejects it.
//
// Errors:
//   - ErrEmptyCriteria, ErrDuplicateCriterion for a bad label set.
//   - ErrUnknownCriterion (wrapped with the label) for unresolved judgments.
//   - ErrSelfComparison when A == B.
//   - ErrInvalidJudgment for negative or non-finite values.
//   - ErrJudgmentOutOfScale under WithStrictScale.
//
// Complexity:
//   - Time O(n² + k) for n labels and k judgments, Space O(n²).
func Build(judgments []Judgment, criteria []string, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	labels, index, err := validateCriteria(criteria)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}
	if o.strictScale {
		if err = ValidateJudgments(judgments); err != nil {
			return nil, fmt.Errorf("%s: %w", opBuild, err)
		}
	}

	values, err := matrix.NewOnes(len(labels))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}

	var (
		i, j   int
		ok     bool
		recipr float64
	)
	for k, jd := range judgments {
		if i, ok = index[jd.A]; !ok {
			return nil, fmt.Errorf("%s: judgment %d: %q: %w", opBuild, k, jd.A, ErrUnknownCriterion)
		}
		if j, ok = index[jd.B]; !ok {
			return nil, fmt.Errorf("%s: judgment %d: %q: %w", opBuild, k, jd.B, ErrUnknownCriterion)
		}
		if i == j {
			return nil, fmt.Errorf("%s: judgment %d: %q: %w", opBuild, k, jd.A, ErrSelfComparison)
		}
		if jd.Value < 0 || math.IsNaN(jd.Value) || math.IsInf(jd.Value, 0) {
			return nil, fmt.Errorf("%s: judgment %d: %g: %w", opBuild, k, jd.Value, ErrInvalidJudgment)
		}

		recipr = Neutral
		if jd.Value != 0 {
			recipr = 1.0 / jd.Value
		}
		// Bounds are guaranteed by the index map.
		_ = values.Set(i, j, jd.Value)
		_ = values.Set(j, i, recipr)
	}

	return newMatrix(values, labels, o.evaluatorID), nil
}

// New wraps a raw n×n table. Cells must be finite and strictly positive;
// reciprocity is not enforced because aggregated tables (arithmetic mean)
// are legitimately non-reciprocal. Use ValidateReciprocal to check it.
//
// Errors:
//   - label-set errors as in Build, ErrDimensionMismatch for shape,
//     ErrInvalidJudgment for non-positive or non-finite cells.
func New(values [][]float64, criteria []string, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	labels, _, err := validateCriteria(criteria)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}
	n := len(labels)
	if len(values) != n {
		return nil, fmt.Errorf("%s: %d rows for %d criteria: %w", opNew, len(values), n, ErrDimensionMismatch)
	}
	for i, row := range values {
		if len(row) != n {
			return nil, fmt.Errorf("%s: row %d has %d cols for %d criteria: %w", opNew, i, len(row), n, ErrDimensionMismatch)
		}
	}
	d, err := matrix.NewFromRows(values)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", opNew, err, ErrInvalidJudgment)
	}

	return fromDense(d, labels, o.evaluatorID)
}

// fromDense validates positivity and wraps d without copying.
func fromDense(d *matrix.Dense, labels []string, evaluatorID string) (*Matrix, error) {
	if err := matrix.ValidatePositive(d); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", opNew, err, ErrInvalidJudgment)
	}

	return newMatrix(d, labels, evaluatorID), nil
}

// FromDense wraps a square positive table produced by matrix kernels
// (aggregation output, for example). d is copied.
func FromDense(d matrix.Matrix, criteria []string, opts ...Option) (*Matrix, error) {
	if err := matrix.ValidateSquare(d); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", opNew, err, ErrDimensionMismatch)
	}
	rows := make([][]float64, d.Rows())
	for i := range rows {
		rows[i] = make([]float64, d.Cols())
		for j := range rows[i] {
			rows[i][j], _ = d.At(i, j)
		}
	}

	return New(rows, criteria, opts...)
}

// FromWeights builds the perfectly consistent matrix a[i][j] = w[i]/w[j].
// Its principal eigenvalue is exactly n and its priority vector is w
// normalized, which makes it the reference fixture for solver round trips.
//
// Errors:
//   - label-set errors as in Build, ErrDimensionMismatch when len(w) != n,
//     ErrInvalidJudgment for non-positive or non-finite weights.
func FromWeights(w []float64, criteria []string, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	labels, _, err := validateCriteria(criteria)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFromWeights, err)
	}
	n := len(labels)
	if len(w) != n {
		return nil, fmt.Errorf("%s: %d weights for %d criteria: %w", opFromWeights, len(w), n, ErrDimensionMismatch)
	}
	for i, x := range w {
		if x <= 0 || math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%s: weight %d = %g: %w", opFromWeights, i, x, ErrInvalidJudgment)
		}
	}
	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFromWeights, err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = d.Set(i, j, w[i]/w[j])
		}
	}

	return newMatrix(d, labels, o.evaluatorID), nil
}

// validateCriteria copies the label set and builds its index.
func validateCriteria(criteria []string) ([]string, map[string]int, error) {
	if len(criteria) == 0 {
		return nil, nil, ErrEmptyCriteria
	}
	labels := make([]string, len(criteria))
	index := make(map[string]int, len(criteria))
	for i, c := range criteria {
		if _, dup := index[c]; dup {
			return nil, nil, fmt.Errorf("%q: %w", c, ErrDuplicateCriterion)
		}
		index[c] = i
		labels[i] = c
	}

	return labels, index, nil
}
