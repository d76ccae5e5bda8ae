// SPDX-License-Identifier: MIT

package group

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/ahp/matrix"
	"github.com/katalvlaran/ahp/pairwise"
	"github.com/katalvlaran/ahp/priority"
)

// EvaluatorID tags every aggregated matrix.
const EvaluatorID = "group"

const (
	opAggregate        = "Aggregate"
	opAggregateResults = "AggregateResults"
)

// Aggregate combines matrices cell-wise under method.
//
// Implementation:
//   - Stage 1: Align, which re-indexes every matrix into the first one's
//     label order and rejects size or label-set differences.
//   - Stage 2: combine with matrix.WeightedGeometricMean (uniform or
//     evaluator weights) or matrix.ArithmeticMean.
//   - Stage 3: the arithmetic mean gets its diagonal reset to 1.
//
// A single matrix aggregates to itself (up to rounding).
//
// Errors:
//   - ErrEmptyInput, ErrNilMatrix, ErrDimensionMismatch, ErrInvalidWeights.
//   - matrix.ErrNonPositive when a geometric rule meets a zero cell.
func Aggregate(matrices []*pairwise.Matrix, method Method) (*pairwise.Matrix, error) {
	aligned, err := Align(matrices)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAggregate, err)
	}
	criteria := aligned[0].Criteria()
	tables := make([]matrix.Matrix, len(aligned))
	for k, m := range aligned {
		tables[k] = m.Values()
	}

	var out matrix.Matrix
	switch method.kind {
	case KindArithmeticMean:
		if out, err = matrix.ArithmeticMean(tables); err != nil {
			return nil, fmt.Errorf("%s: %w", opAggregate, err)
		}
		for i := 0; i < len(criteria); i++ {
			_ = out.Set(i, i, pairwise.Neutral)
		}
	case KindGeometricMean, KindWeightedGeometricMean:
		w, err := method.evaluatorWeights(len(tables))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opAggregate, err)
		}
		if out, err = matrix.WeightedGeometricMean(tables, w); err != nil {
			return nil, fmt.Errorf("%s: %w", opAggregate, err)
		}
	default:
		return nil, fmt.Errorf("%s: %s: %w", opAggregate, method.kind, ErrUnknownMethod)
	}

	return pairwise.FromDense(out, criteria, pairwise.WithEvaluator(EvaluatorID))
}

// Align checks that all matrices share one label set and returns them
// re-indexed into the label order of the first. Matrices already in that
// order are returned as is.
//
// Errors: ErrEmptyInput, ErrNilMatrix, ErrDimensionMismatch.
func Align(matrices []*pairwise.Matrix) ([]*pairwise.Matrix, error) {
	if len(matrices) == 0 {
		return nil, ErrEmptyInput
	}
	base := matrices[0]
	if base == nil {
		return nil, fmt.Errorf("matrix 0: %w", ErrNilMatrix)
	}
	criteria := base.Criteria()
	out := make([]*pairwise.Matrix, len(matrices))
	out[0] = base
	for k := 1; k < len(matrices); k++ {
		m := matrices[k]
		if m == nil {
			return nil, fmt.Errorf("matrix %d: %w", k, ErrNilMatrix)
		}
		if m.Size() != base.Size() {
			return nil, fmt.Errorf("matrix %d has %d criteria, want %d: %w", k, m.Size(), base.Size(), ErrDimensionMismatch)
		}
		if !base.HasSameCriteria(m) {
			return nil, fmt.Errorf("matrix %d criteria %v, want %v: %w", k, m.Criteria(), criteria, ErrDimensionMismatch)
		}
		if sameOrder(criteria, m.Criteria()) {
			out[k] = m
			continue
		}
		r, err := m.Reorder(criteria)
		if err != nil {
			return nil, fmt.Errorf("matrix %d: %v: %w", k, err, ErrDimensionMismatch)
		}
		out[k] = r
	}

	return out, nil
}

func sameOrder(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Priorities is a group weight vector obtained by aggregating individual
// priority vectors.
type Priorities struct {
	Criteria []string           `json:"criteria" yaml:"criteria"`
	Weights  map[string]float64 `json:"weights" yaml:"weights"`
	Vector   []float64          `json:"vector" yaml:"vector"`
	Rank     []string           `json:"rank" yaml:"rank"`
}

// AggregateResults combines already solved priority vectors (AIP). Each
// criterion's group weight is the (weighted) geometric or arithmetic mean of
// the individual weights; the vector is then renormalized to sum 1.
// Labels follow the first result's order.
//
// Errors: ErrEmptyInput, ErrDimensionMismatch, ErrInvalidWeights, and
// matrix.ErrZeroSum when every mean is zero.
func AggregateResults(results []priority.Result, method Method) (Priorities, error) {
	if len(results) == 0 {
		return Priorities{}, fmt.Errorf("%s: %w", opAggregateResults, ErrEmptyInput)
	}
	criteria := append([]string(nil), results[0].Criteria...)
	for k, r := range results {
		if len(r.Weights) != len(criteria) {
			return Priorities{}, fmt.Errorf("%s: result %d has %d criteria, want %d: %w",
				opAggregateResults, k, len(r.Weights), len(criteria), ErrDimensionMismatch)
		}
		for _, c := range criteria {
			if _, ok := r.Weights[c]; !ok {
				return Priorities{}, fmt.Errorf("%s: result %d lacks %q: %w", opAggregateResults, k, c, ErrDimensionMismatch)
			}
		}
	}
	w, err := method.evaluatorWeights(len(results))
	if err != nil {
		return Priorities{}, fmt.Errorf("%s: %w", opAggregateResults, err)
	}

	column := make([]float64, len(results))
	raw := make([]float64, len(criteria))
	for i, c := range criteria {
		for k, r := range results {
			column[k] = r.Weights[c]
		}
		if method.kind == KindArithmeticMean {
			raw[i] = stat.Mean(column, w)
		} else {
			raw[i] = stat.GeometricMean(column, w)
		}
	}
	vec, _, err := matrix.NormalizeL1(raw)
	if err != nil {
		return Priorities{}, fmt.Errorf("%s: %w", opAggregateResults, err)
	}
	weights := make(map[string]float64, len(criteria))
	for i, c := range criteria {
		weights[c] = vec[i]
	}

	return Priorities{
		Criteria: criteria,
		Weights:  weights,
		Vector:   vec,
		Rank:     priority.Rank(criteria, vec, priority.DefaultEpsilon),
	}, nil
}
