// SPDX-License-Identifier: MIT

package sensitivity

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ahp/pairwise"
	"github.com/katalvlaran/ahp/priority"
)

func TestSolveStep_FailureFallsBackToBaseline(t *testing.T) {
	t.Parallel()

	m, err := pairwise.FromWeights([]float64{3, 2, 1}, []string{"A", "B", "C"})
	require.NoError(t, err)
	baseline, err := priority.Solve(m)
	require.NoError(t, err)

	var buf bytes.Buffer
	o, err := gatherOptions(WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	require.NoError(t, err)

	// A factor of 1+p = 0 cannot scale a ratio table.
	s := solveStep(m, "A", -1, baseline, o)
	assert.True(t, s.fallback)
	assert.Equal(t, baseline.Vector, s.vector)
	assert.Equal(t, baseline.Rank, s.ranking)
	assert.Contains(t, buf.String(), "sensitivity step failed")
	assert.Contains(t, buf.String(), "criterion=A")
}

func TestCollect_CountsFallbacks(t *testing.T) {
	t.Parallel()

	m, err := pairwise.FromWeights([]float64{3, 2, 1}, []string{"A", "B", "C"})
	require.NoError(t, err)
	baseline, err := priority.Solve(m)
	require.NoError(t, err)

	steps := []step{
		{vector: baseline.Vector, ranking: baseline.Rank, fallback: true},
		{vector: []float64{0.2, 0.5, 0.3}, ranking: []string{"B", "C", "A"}},
	}
	res := collect("A", []float64{-0.1, 0.1}, steps, baseline, 0.1)
	assert.Equal(t, 1, res.Fallbacks)
	require.Len(t, res.Reversals, 1)
	assert.Len(t, res.Reversals[0].Changes, 3)
	assert.InDelta(t, (baseline.Vector[0]-0.2)/0.2, res.Coefficient, 1e-12)
}

func TestCoefficient_Degenerate(t *testing.T) {
	t.Parallel()

	assert.Zero(t, coefficient(nil, 0.1))
	assert.Zero(t, coefficient([]float64{0.4}, 0.1))
	assert.Zero(t, coefficient([]float64{0.4, 0.5}, 0))
}
