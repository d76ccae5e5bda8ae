// SPDX-License-Identifier: MIT

package priority

import "fmt"

// Method names the algorithm that produced a weight vector.
type Method string

const (
	// MethodEigenvector is Saaty's principal eigenvector method.
	MethodEigenvector Method = "eigenvector"

	// MethodGeometricMean is the row geometric mean method.
	MethodGeometricMean Method = "geometric_mean"
)

// ParseMethod resolves a method name from configuration.
func ParseMethod(name string) (Method, error) {
	switch Method(name) {
	case MethodEigenvector, MethodGeometricMean:
		return Method(name), nil
	}

	return "", fmt.Errorf("ParseMethod: %q: %w", name, ErrUnknownMethod)
}

// Result is the outcome of solving one comparison matrix.
//
// Vector is index-aligned with Criteria; Weights carries the same numbers by
// label. Rank orders labels by descending weight, ties kept in input order.
type Result struct {
	Criteria   []string           `json:"criteria" yaml:"criteria"`
	Weights    map[string]float64 `json:"weights" yaml:"weights"`
	Vector     []float64          `json:"vector" yaml:"vector"`
	LambdaMax  float64            `json:"lambda_max" yaml:"lambda_max"`
	CI         float64            `json:"ci" yaml:"ci"`
	CR         float64            `json:"cr" yaml:"cr"`
	Consistent bool               `json:"consistent" yaml:"consistent"`
	Threshold  float64            `json:"threshold" yaml:"threshold"`
	Rank       []string           `json:"rank" yaml:"rank"`
	Method     Method             `json:"method" yaml:"method"`
}

// Position returns the 1-based rank of label, or 0 when absent.
func (r Result) Position(label string) int {
	for i, l := range r.Rank {
		if l == label {
			return i + 1
		}
	}

	return 0
}
