// SPDX-License-Identifier: MIT

package pairwise

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ahp/matrix"
)

const (
	opReorder = "Reorder"
	opScale   = "ScaleCriterion"
)

// Reorder returns a copy whose rows/columns follow the given label order.
// The label set must equal the matrix's own (order-insensitive).
//
// Errors:
//   - ErrCriteriaMismatch when the sets differ, ErrDuplicateCriterion for repeats.
//
// Complexity: O(n²).
func (m *Matrix) Reorder(criteria []string) (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	labels, _, err := validateCriteria(criteria)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReorder, err)
	}
	if len(labels) != m.Size() {
		return nil, fmt.Errorf("%s: %d labels for %d criteria: %w", opReorder, len(labels), m.Size(), ErrCriteriaMismatch)
	}
	perm := make([]int, len(labels))
	for k, c := range labels {
		src, ok := m.index[c]
		if !ok {
			return nil, fmt.Errorf("%s: %q: %w", opReorder, c, ErrCriteriaMismatch)
		}
		perm[k] = src
	}

	n := len(labels)
	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReorder, err)
	}
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ = m.values.At(perm[i], perm[j])
			_ = d.Set(i, j, v)
		}
	}

	return newMatrix(d, labels, m.evaluatorID), nil
}

// ScaleCriterion returns a copy where label's row is multiplied by factor and
// its column by 1/factor. The diagonal stays 1, so a reciprocal input stays
// reciprocal. Cells may leave [1/9, 9]; perturbation analysis relies on that.
//
// Errors:
//   - ErrUnknownCriterion for an unknown label, ErrInvalidFactor for factor <= 0 or non-finite.
//
// Complexity: O(n²) copy + O(n) writes.
func (m *Matrix) ScaleCriterion(label string, factor float64) (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	t, ok := m.index[label]
	if !ok {
		return nil, fmt.Errorf("%s: %q: %w", opScale, label, ErrUnknownCriterion)
	}
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return nil, fmt.Errorf("%s: %g: %w", opScale, factor, ErrInvalidFactor)
	}

	d := m.Values()
	var v float64
	for j := 0; j < m.Size(); j++ {
		if j == t {
			continue
		}
		v, _ = d.At(t, j)
		if err := d.Set(t, j, v*factor); err != nil {
			return nil, fmt.Errorf("%s: %w", opScale, err)
		}
		v, _ = d.At(j, t)
		if err := d.Set(j, t, v/factor); err != nil {
			return nil, fmt.Errorf("%s: %w", opScale, err)
		}
	}

	return newMatrix(d, m.Criteria(), m.evaluatorID), nil
}
