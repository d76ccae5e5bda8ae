// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep all data finite and positive to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ahp/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their At/Set fallback paths.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return d
}

// NewFilledDense builds an r×c Dense from row-major values.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	require.Len(t, vals, r*c, "fixture size")
	d := MustDense(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, d.Set(i, j, vals[i*c+j]))
		}
	}

	return d
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// CompareClose asserts AllClose(a, b, rtol, atol).
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ:\n%v\nvs\n%v", a, b)
}

// sliceClose asserts element-wise |a-b| ≤ atol + rtol*|b|.
func sliceClose(t *testing.T, a, b []float64, rtol, atol float64) {
	t.Helper()
	require.Len(t, a, len(b))
	for i := range a {
		require.LessOrEqualf(t, math.Abs(a[i]-b[i]), atol+rtol*math.Abs(b[i]), "index %d: %g vs %g", i, a[i], b[i])
	}
}

// saatyABC is the classic 3×3 comparison table A>B (3), A>C (5), B>C (2).
func saatyABC(t *testing.T) *matrix.Dense {
	t.Helper()

	return NewFilledDense(t, 3, 3, []float64{
		1, 3, 5,
		1.0 / 3, 1, 2,
		1.0 / 5, 1.0 / 2, 1,
	})
}
