// SPDX-License-Identifier: MIT

package pairwise

import (
	"fmt"

	"github.com/katalvlaran/ahp/matrix"
)

// Saaty's fundamental scale bounds.
const (
	// MinScale is the smallest admissible judgment (extreme inverse importance).
	MinScale = 1.0 / 9.0

	// MaxScale is the largest admissible judgment (extreme importance).
	MaxScale = 9.0

	// Neutral is the value of an unjudged pair and of every diagonal cell.
	Neutral = 1.0
)

// Judgment states that label A is Value times as important as label B.
type Judgment struct {
	A     string  `json:"a" yaml:"a"`
	B     string  `json:"b" yaml:"b"`
	Value float64 `json:"value" yaml:"value"`
}

// Matrix is an immutable reciprocal comparison table over ordered labels.
// The zero value is not usable; construct with Build, New or FromWeights.
type Matrix struct {
	values      *matrix.Dense  // n×n ratio table, owned
	criteria    []string       // index-aligned labels, owned
	index       map[string]int // label -> row/col
	evaluatorID string         // traceability only
}

// newMatrix takes ownership of values and criteria; callers guarantee shape.
func newMatrix(values *matrix.Dense, criteria []string, evaluatorID string) *Matrix {
	idx := make(map[string]int, len(criteria))
	for i, c := range criteria {
		idx[c] = i
	}

	return &Matrix{values: values, criteria: criteria, index: idx, evaluatorID: evaluatorID}
}

// Size returns n, the number of labels.
func (m *Matrix) Size() int { return len(m.criteria) }

// Criteria returns a copy of the ordered label set.
func (m *Matrix) Criteria() []string {
	out := make([]string, len(m.criteria))
	copy(out, m.criteria)

	return out
}

// EvaluatorID returns the optional evaluator identifier.
func (m *Matrix) EvaluatorID() string { return m.evaluatorID }

// Index returns the row/column of label and whether it exists.
func (m *Matrix) Index(label string) (int, bool) {
	i, ok := m.index[label]

	return i, ok
}

// At returns cell (i, j). Indices outside [0, Size()) yield matrix.ErrOutOfRange.
func (m *Matrix) At(i, j int) (float64, error) {
	return m.values.At(i, j)
}

// Value returns how many times label a is preferred over label b.
func (m *Matrix) Value(a, b string) (float64, error) {
	i, ok := m.index[a]
	if !ok {
		return 0, fmt.Errorf("Value: %q: %w", a, ErrUnknownCriterion)
	}
	j, ok := m.index[b]
	if !ok {
		return 0, fmt.Errorf("Value: %q: %w", b, ErrUnknownCriterion)
	}

	return m.values.At(i, j)
}

// Values returns a deep copy of the ratio table.
func (m *Matrix) Values() *matrix.Dense {
	return m.values.Clone().(*matrix.Dense)
}

// Rows returns the ratio table as a fresh row slice.
func (m *Matrix) Rows() [][]float64 {
	return m.values.ToRows()
}

// HasSameCriteria reports whether other carries the same label set,
// irrespective of order.
func (m *Matrix) HasSameCriteria(other *Matrix) bool {
	if other == nil || len(other.criteria) != len(m.criteria) {
		return false
	}
	for _, c := range other.criteria {
		if _, ok := m.index[c]; !ok {
			return false
		}
	}

	return true
}

// String renders the evaluator, labels and table for diagnostics.
func (m *Matrix) String() string {
	return fmt.Sprintf("pairwise(%s) %v\n%s", m.evaluatorID, m.criteria, m.values)
}
