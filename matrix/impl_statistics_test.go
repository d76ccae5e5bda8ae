// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ahp/matrix"
)

func TestNormalizeL1(t *testing.T) {
	t.Parallel()

	out, norm, err := matrix.NormalizeL1([]float64{1, 3})
	require.NoError(t, err)
	assert.Equal(t, 4.0, norm)
	assert.Equal(t, []float64{0.25, 0.75}, out)

	_, _, err = matrix.NormalizeL1([]float64{0, 0})
	assert.ErrorIs(t, err, matrix.ErrZeroSum)

	_, _, err = matrix.NormalizeL1([]float64{math.NaN()})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	_, _, err = matrix.NormalizeL1(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMean(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, matrix.Mean(nil))
	assert.Equal(t, 2.0, matrix.Mean([]float64{1, 2, 3}))
}

func TestMeanRatio(t *testing.T) {
	t.Parallel()

	r, err := matrix.MeanRatio([]float64{2, 6, 5}, []float64{1, 2, 0})
	require.NoError(t, err)
	assert.Equal(t, 2.5, r, "zero denominators are skipped")

	_, err = matrix.MeanRatio([]float64{1}, []float64{0})
	assert.ErrorIs(t, err, matrix.ErrZeroSum)

	_, err = matrix.MeanRatio([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
