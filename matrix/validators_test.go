// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/ahp/matrix"
)

func TestValidateSquare(t *testing.T) {
	t.Parallel()

	assert.NoError(t, matrix.ValidateSquare(MustDense(t, 3, 3)))
	assert.ErrorIs(t, matrix.ValidateSquare(MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
}

func TestValidatePositive(t *testing.T) {
	t.Parallel()

	assert.NoError(t, matrix.ValidatePositive(saatyABC(t)))
	assert.ErrorIs(t, matrix.ValidatePositive(NewFilledDense(t, 1, 2, []float64{1, -1})), matrix.ErrNonPositive)
}

func TestValidateReciprocal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vals []float64
		want error
	}{
		{"reciprocal", []float64{1, 3, 1.0 / 3, 1}, nil},
		{"broken pair", []float64{1, 3, 0.5, 1}, matrix.ErrNotReciprocal},
		{"diagonal", []float64{2, 3, 1.0 / 3, 1}, matrix.ErrNotReciprocal},
		{"zero", []float64{1, 0, 1, 1}, matrix.ErrNonPositive},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := matrix.ValidateReciprocal(NewFilledDense(t, 2, 2, tc.vals), 1e-9)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
