// SPDX-License-Identifier: MIT

package group

import (
	"fmt"
	"math"
)

// Kind identifies an aggregation rule.
type Kind int

const (
	// KindGeometricMean is the cell-wise geometric mean (zero value).
	KindGeometricMean Kind = iota

	// KindArithmeticMean is the cell-wise arithmetic mean.
	KindArithmeticMean

	// KindWeightedGeometricMean is the evaluator-weighted geometric mean.
	KindWeightedGeometricMean
)

var kindNames = [...]string{
	KindGeometricMean:         "geometric_mean",
	KindArithmeticMean:        "arithmetic_mean",
	KindWeightedGeometricMean: "weighted_geometric_mean",
}

// String returns the configuration name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Method is an aggregation rule plus its parameters. Build it with
// GeometricMean, ArithmeticMean or WeightedGeometricMean; the zero value is
// the unweighted geometric mean.
type Method struct {
	kind    Kind
	weights []float64 // KindWeightedGeometricMean only; nil means uniform
}

// GeometricMean aggregates with the cell-wise geometric mean.
func GeometricMean() Method { return Method{kind: KindGeometricMean} }

// ArithmeticMean aggregates with the cell-wise arithmetic mean.
func ArithmeticMean() Method { return Method{kind: KindArithmeticMean} }

// WeightedGeometricMean aggregates with one weight per evaluator, in input
// order. With no weights every evaluator counts equally. Weights are
// validated and normalized when Aggregate runs.
func WeightedGeometricMean(weights ...float64) Method {
	var w []float64
	if len(weights) > 0 {
		w = make([]float64, len(weights))
		copy(w, weights)
	}

	return Method{kind: KindWeightedGeometricMean, weights: w}
}

// Kind returns the rule.
func (m Method) Kind() Kind { return m.kind }

// Weights returns a copy of the evaluator weights (nil when uniform).
func (m Method) Weights() []float64 {
	if m.weights == nil {
		return nil
	}
	out := make([]float64, len(m.weights))
	copy(out, m.weights)

	return out
}

// String returns the rule name.
func (m Method) String() string { return m.kind.String() }

// ParseMethod maps a configuration name to a Method. weights apply only to
// weighted_geometric_mean and are ignored otherwise.
func ParseMethod(name string, weights []float64) (Method, error) {
	switch name {
	case kindNames[KindGeometricMean]:
		return GeometricMean(), nil
	case kindNames[KindArithmeticMean]:
		return ArithmeticMean(), nil
	case kindNames[KindWeightedGeometricMean]:
		return WeightedGeometricMean(weights...), nil
	}

	return Method{}, fmt.Errorf("ParseMethod: %q: %w", name, ErrUnknownMethod)
}

// evaluatorWeights returns k weights summing to 1.
func (m Method) evaluatorWeights(k int) ([]float64, error) {
	if m.kind != KindWeightedGeometricMean || m.weights == nil {
		return uniform(k), nil
	}
	if len(m.weights) != k {
		return nil, fmt.Errorf("%d weights for %d evaluators: %w", len(m.weights), k, ErrInvalidWeights)
	}
	var total float64
	for i, w := range m.weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("weight %d = %g: %w", i, w, ErrInvalidWeights)
		}
		total += w
	}
	if total == 0 {
		return nil, fmt.Errorf("weights sum to zero: %w", ErrInvalidWeights)
	}
	out := make([]float64, k)
	for i, w := range m.weights {
		out[i] = w / total
	}

	return out, nil
}

func uniform(k int) []float64 {
	out := make([]float64, k)
	for i := range out {
		out[i] = 1.0 / float64(k)
	}

	return out
}
