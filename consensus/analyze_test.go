// SPDX-License-Identifier: MIT

package consensus_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ahp/consensus"
	"github.com/katalvlaran/ahp/pairwise"
)

var abc = []string{"A", "B", "C"}

func fromWeights(t *testing.T, w ...float64) *pairwise.Matrix {
	t.Helper()
	m, err := pairwise.FromWeights(w, abc)
	require.NoError(t, err)

	return m
}

func TestAnalyze_FewerThanTwoIsUnanimous(t *testing.T) {
	t.Parallel()

	for _, in := range [][]*pairwise.Matrix{nil, {fromWeights(t, 3, 2, 1)}} {
		got, err := consensus.Analyze(in)
		require.NoError(t, err)
		assert.Equal(t, 1.0, got.KendallW)
		assert.Equal(t, 1.0, got.SpearmanRho)
		assert.Equal(t, 1.0, got.ConsensusIndex)
		assert.Equal(t, len(in), got.Evaluators)
	}
}

func TestAnalyze_IdenticalEvaluators(t *testing.T) {
	t.Parallel()

	m := fromWeights(t, 5, 3, 2)
	got, err := consensus.Analyze([]*pairwise.Matrix{m, m, m})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got.KendallW, 1e-12)
	assert.InDelta(t, 1.0, got.SpearmanRho, 1e-12)
	assert.InDelta(t, 1.0, got.ConsensusIndex, 1e-9)
	assert.Equal(t, 3, got.Evaluators)
	assert.Equal(t, consensus.LevelStrong, got.Level())
}

func TestAnalyze_OppositeEvaluators(t *testing.T) {
	t.Parallel()

	got, err := consensus.Analyze([]*pairwise.Matrix{
		fromWeights(t, 5, 3, 2),
		fromWeights(t, 2, 3, 5),
	}, consensus.WithConcurrency(1))
	require.NoError(t, err)
	assert.InDelta(t, 0.0, got.KendallW, 1e-12)
	assert.InDelta(t, -1.0, got.SpearmanRho, 1e-12)
	assert.Less(t, got.ConsensusIndex, 1.0)
	assert.Greater(t, got.ConsensusIndex, 0.0)
	assert.Equal(t, consensus.LevelWeak, got.Level())
}

func TestAnalyze_LabelOrderDoesNotMatter(t *testing.T) {
	t.Parallel()

	a := fromWeights(t, 5, 3, 2)
	b, err := a.Reorder([]string{"C", "A", "B"})
	require.NoError(t, err)
	got, err := consensus.AnalyzeContext(context.Background(), []*pairwise.Matrix{a, b})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got.KendallW, 1e-12)
}

func TestAnalyze_DimensionMismatch(t *testing.T) {
	t.Parallel()

	small, err := pairwise.Build(nil, []string{"A", "B"})
	require.NoError(t, err)
	_, err = consensus.Analyze([]*pairwise.Matrix{fromWeights(t, 1, 2, 3), small})
	assert.ErrorIs(t, err, consensus.ErrDimensionMismatch)

	other, err := pairwise.Build(nil, []string{"A", "B", "Z"})
	require.NoError(t, err)
	_, err = consensus.Analyze([]*pairwise.Matrix{fromWeights(t, 1, 2, 3), other})
	assert.ErrorIs(t, err, consensus.ErrDimensionMismatch)
}

func TestAnalyze_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := consensus.AnalyzeContext(ctx, []*pairwise.Matrix{fromWeights(t, 1, 2, 3), fromWeights(t, 3, 2, 1)})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMetrics_Level(t *testing.T) {
	t.Parallel()

	assert.Equal(t, consensus.LevelStrong, consensus.Metrics{KendallW: 0.8}.Level())
	assert.Equal(t, consensus.LevelModerate, consensus.Metrics{KendallW: 0.6}.Level())
	assert.Equal(t, consensus.LevelModerate, consensus.Metrics{KendallW: 0.79}.Level())
	assert.Equal(t, consensus.LevelWeak, consensus.Metrics{KendallW: 0.59}.Level())
}
