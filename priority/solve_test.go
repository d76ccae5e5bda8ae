// SPDX-License-Identifier: MIT

package priority_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ahp/matrix"
	"github.com/katalvlaran/ahp/pairwise"
	"github.com/katalvlaran/ahp/priority"
)

var abc = []string{"A", "B", "C"}

func mustBuild(t *testing.T, judgments []pairwise.Judgment, criteria []string) *pairwise.Matrix {
	t.Helper()
	m, err := pairwise.Build(judgments, criteria)
	require.NoError(t, err)

	return m
}

func abcMatrix(t *testing.T) *pairwise.Matrix {
	return mustBuild(t, []pairwise.Judgment{
		{A: "A", B: "B", Value: 3},
		{A: "A", B: "C", Value: 5},
		{A: "B", B: "C", Value: 2},
	}, abc)
}

func sum(v []float64) float64 {
	s := 0.0
	for _, x := range v {
		s += x
	}

	return s
}

func TestSolve_ThreeCriteriaScenario(t *testing.T) {
	t.Parallel()

	res, err := priority.Solve(abcMatrix(t))
	require.NoError(t, err)

	assert.Equal(t, priority.MethodEigenvector, res.Method)
	assert.Equal(t, []string{"A", "B", "C"}, res.Rank)
	assert.Greater(t, res.Weights["A"], 0.5)
	assert.Less(t, res.CR, 0.1)
	assert.True(t, res.Consistent)
	assert.InDelta(t, 1.0, sum(res.Vector), 1e-6)
	assert.GreaterOrEqual(t, res.LambdaMax, 3.0-1e-9)
	assert.Equal(t, 0.1, res.Threshold)
	assert.Equal(t, 1, res.Position("A"))
	assert.Equal(t, 3, res.Position("C"))
	assert.Zero(t, res.Position("Z"))

	for i, c := range res.Criteria {
		assert.Equal(t, res.Vector[i], res.Weights[c])
	}
}

func TestSolve_WeightsSumToOne(t *testing.T) {
	t.Parallel()

	labels := []string{"a", "b", "c", "d", "e"}
	m := mustBuild(t, []pairwise.Judgment{
		{A: "a", B: "b", Value: 7},
		{A: "a", B: "c", Value: 1.0 / 3},
		{A: "b", B: "d", Value: 9},
		{A: "c", B: "e", Value: 4},
		{A: "d", B: "e", Value: 1.0 / 5},
		{A: "a", B: "e", Value: 2},
	}, labels)

	for _, method := range []priority.Method{priority.MethodEigenvector, priority.MethodGeometricMean} {
		res, err := priority.Solve(m, priority.WithMethod(method))
		require.NoError(t, err)
		assert.Equal(t, method, res.Method)
		assert.InDelta(t, 1.0, sum(res.Vector), 1e-6)
		for _, w := range res.Vector {
			assert.GreaterOrEqual(t, w, 0.0)
		}
		assert.Len(t, res.Rank, len(labels))
	}
}

func TestSolve_ConsistentRoundTrip(t *testing.T) {
	t.Parallel()

	w := []float64{0.4, 0.3, 0.2, 0.1}
	labels := []string{"w", "x", "y", "z"}
	m, err := pairwise.FromWeights(w, labels)
	require.NoError(t, err)

	for _, method := range []priority.Method{priority.MethodEigenvector, priority.MethodGeometricMean} {
		res, err := priority.Solve(m, priority.WithMethod(method))
		require.NoError(t, err)
		assert.InDelta(t, 4.0, res.LambdaMax, 1e-6, "method %s", method)
		assert.InDelta(t, 0.0, res.CR, 1e-6)
		assert.True(t, res.Consistent)
		for i := range w {
			assert.InDelta(t, w[i], res.Vector[i], 1e-6)
		}
		assert.Equal(t, labels, res.Rank)
	}
}

func TestSolve_SingleCriterion(t *testing.T) {
	t.Parallel()

	m := mustBuild(t, nil, []string{"only"})
	res, err := priority.Solve(m)
	require.NoError(t, err)
	assert.Equal(t, priority.MethodGeometricMean, res.Method)
	assert.Equal(t, 1.0, res.Weights["only"])
	assert.Zero(t, res.CR)
	assert.True(t, res.Consistent)
}

func TestSolve_TwoCriteriaAlwaysConsistent(t *testing.T) {
	t.Parallel()

	m := mustBuild(t, []pairwise.Judgment{{A: "x", B: "y", Value: 9}}, []string{"x", "y"})
	res, err := priority.Solve(m)
	require.NoError(t, err)
	assert.Zero(t, res.CR)
	assert.InDelta(t, 0.9, res.Weights["x"], 1e-9)
}

func TestSolve_Inconsistent(t *testing.T) {
	t.Parallel()

	// A > B, B > C, C > A: a cycle.
	m := mustBuild(t, []pairwise.Judgment{
		{A: "A", B: "B", Value: 9},
		{A: "B", B: "C", Value: 9},
		{A: "C", B: "A", Value: 9},
	}, abc)
	res, err := priority.Solve(m)
	require.NoError(t, err)
	assert.Greater(t, res.CR, 0.1)
	assert.False(t, res.Consistent)

	relaxed, err := priority.Solve(m, priority.WithThreshold(100))
	require.NoError(t, err)
	assert.True(t, relaxed.Consistent)
}

func TestSolve_EqualWeightsKeepInputOrder(t *testing.T) {
	t.Parallel()

	m := mustBuild(t, nil, []string{"z", "y", "x"})
	res, err := priority.Solve(m)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "y", "x"}, res.Rank)
	for _, w := range res.Vector {
		assert.InDelta(t, 1.0/3, w, 1e-9)
	}
}

func TestSolve_Errors(t *testing.T) {
	t.Parallel()

	_, err := priority.Solve(nil)
	assert.ErrorIs(t, err, priority.ErrNilMatrix)
	_, err = priority.SolveEigen(nil)
	assert.ErrorIs(t, err, priority.ErrNilMatrix)
	_, err = priority.SolveGeometricMean(nil)
	assert.ErrorIs(t, err, priority.ErrNilMatrix)

	zero := mustBuild(t, []pairwise.Judgment{{A: "A", B: "B", Value: 0}}, abc)
	_, err = priority.SolveGeometricMean(zero)
	assert.ErrorIs(t, err, matrix.ErrNonPositive)
}

func TestSolveEigen_MatchesGeometricOnConsistentInput(t *testing.T) {
	t.Parallel()

	m, err := pairwise.FromWeights([]float64{5, 3, 2}, abc)
	require.NoError(t, err)
	e, err := priority.SolveEigen(m)
	require.NoError(t, err)
	g, err := priority.SolveGeometricMean(m)
	require.NoError(t, err)
	for i := range e.Vector {
		assert.InDelta(t, g.Vector[i], e.Vector[i], 1e-9)
	}
}

func TestRank(t *testing.T) {
	t.Parallel()

	got := priority.Rank([]string{"a", "b", "c", "d"}, []float64{0.1, 0.4, 0.4 + 1e-12, 0.1}, 1e-9)
	assert.Equal(t, []string{"b", "c", "a", "d"}, got)

	got = priority.Rank([]string{"a", "b"}, []float64{0.5, 0.5 + 1e-6}, 1e-9)
	assert.Equal(t, []string{"b", "a"}, got)
}

func TestParseMethod(t *testing.T) {
	t.Parallel()

	m, err := priority.ParseMethod("geometric_mean")
	require.NoError(t, err)
	assert.Equal(t, priority.MethodGeometricMean, m)
	_, err = priority.ParseMethod("power")
	assert.ErrorIs(t, err, priority.ErrUnknownMethod)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { priority.WithThreshold(-1) })
	assert.Panics(t, func() { priority.WithEpsilon(-1) })
	assert.Panics(t, func() { priority.WithMethod("power") })
	assert.NotPanics(t, func() { priority.WithLogger(nil) })
}
