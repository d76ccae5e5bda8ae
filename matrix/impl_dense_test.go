// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ahp/matrix"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ r, c int }{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(tc.r, tc.c)
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "shape %dx%d", tc.r, tc.c)
	}
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	d := MustDense(t, 2, 2)
	require.NoError(t, d.Set(1, 1, 4.5))
	assert.Equal(t, 4.5, MustAt(t, d, 1, 1))

	_, err := d.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, d.Set(0, -1, 1), matrix.ErrOutOfRange)
}

func TestDense_SetRejectsNaNInf(t *testing.T) {
	t.Parallel()

	d := MustDense(t, 1, 1)
	assert.ErrorIs(t, d.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, d.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	d := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	c := d.Clone()
	require.NoError(t, c.Set(0, 0, 9))
	assert.Equal(t, 1.0, MustAt(t, d, 0, 0))
	assert.Equal(t, 9.0, MustAt(t, c, 0, 0))
}

func TestNewFromRows(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, d.ToRows())

	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewFromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_RowAndRawDataAreCopies(t *testing.T) {
	t.Parallel()

	d := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	row, err := d.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, row)
	row[0] = 100
	raw := d.RawData()
	raw[1] = 100
	assert.Equal(t, 3.0, MustAt(t, d, 1, 0))
	assert.Equal(t, 2.0, MustAt(t, d, 0, 1))

	_, err = d.Row(5)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_ApplyAndDo(t *testing.T) {
	t.Parallel()

	d := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, d.Apply(func(_, _ int, v float64) float64 { return v * 2 }))

	var sum float64
	d.Do(func(_, _ int, v float64) bool {
		sum += v

		return true
	})
	assert.Equal(t, 20.0, sum)

	err := d.Apply(func(_, _ int, v float64) float64 { return math.Inf(1) })
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestNewOnes(t *testing.T) {
	t.Parallel()

	o, err := matrix.NewOnes(3)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateReciprocal(o, 0))
	assert.Equal(t, "[1, 1, 1]\n[1, 1, 1]\n[1, 1, 1]\n", o.String())
}
