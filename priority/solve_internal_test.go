// SPDX-License-Identifier: MIT

package priority

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ahp/matrix"
)

func failing(a *matrix.Dense) (estimate, error) {
	return estimate{}, ErrEigenFailed
}

func TestOrElse_FallsBackAndReports(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewFromRows([][]float64{{1, 2}, {0.5, 1}})
	require.NoError(t, err)

	var seen []error
	s := solver(failing).orElse(geometricMean, func(err error) { seen = append(seen, err) })
	est, err := s(a)
	require.NoError(t, err)
	assert.Equal(t, MethodGeometricMean, est.method)
	assert.InDelta(t, 2.0/3, est.vector[0], 1e-12)
	require.Len(t, seen, 1)
	assert.True(t, errors.Is(seen[0], ErrEigenFailed))
}

func TestOrElse_PrimarySuccessSkipsFallback(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewFromRows([][]float64{{1, 2}, {0.5, 1}})
	require.NoError(t, err)

	called := false
	s := solver(eigenvector).orElse(failing, func(error) { called = true })
	est, err := s(a)
	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, MethodEigenvector, est.method)
	assert.InDelta(t, 2.0, est.lambdaMax, 1e-9)
}

func TestGatherOptions_Defaults(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))
	o := gatherOptions(WithLogger(l), WithEpsilon(0.01))
	assert.Same(t, l, o.logger)
	assert.Equal(t, 0.01, o.eps)
	assert.Equal(t, 0.1, o.threshold)
	assert.Equal(t, Method(""), o.method)
}
