// SPDX-License-Identifier: MIT

package priority_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/ahp/pairwise"
	"github.com/katalvlaran/ahp/priority"
)

func benchMatrix(b *testing.B, n int) *pairwise.Matrix {
	b.Helper()
	labels := make([]string, n)
	w := make([]float64, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("c%02d", i)
		w[i] = float64(n - i)
	}
	m, err := pairwise.FromWeights(w, labels)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkSolve_Eigen_15(b *testing.B) {
	m := benchMatrix(b, 15)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = priority.Solve(m)
	}
}

func BenchmarkSolve_Geometric_15(b *testing.B) {
	m := benchMatrix(b, 15)
	opt := priority.WithMethod(priority.MethodGeometricMean)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = priority.Solve(m, opt)
	}
}
