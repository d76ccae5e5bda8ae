// SPDX-License-Identifier: MIT

package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ahp/config"
	"github.com/katalvlaran/ahp/group"
	"github.com/katalvlaran/ahp/priority"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0.1, cfg.Consistency.Threshold)
	assert.Equal(t, 20, cfg.Sensitivity.Steps)
	assert.Equal(t, "geometric_mean", cfg.Aggregation.Method)
	assert.Equal(t, config.DefaultCacheSize, cfg.Cache.Size)

	m, err := cfg.SolverMethod()
	require.NoError(t, err)
	assert.Equal(t, priority.Method(""), m)
	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestLoad_OverridesOnlyGivenKeys(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `consistency:
  threshold: 0.08
solver:
  method: geometric_mean
sensitivity:
  steps: 11
aggregation:
  method: weighted_geometric_mean
  weights: [2, 1, 1]
log:
  level: debug
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.08, cfg.Consistency.Threshold)
	assert.Equal(t, 11, cfg.Sensitivity.Steps)
	assert.Equal(t, 0.1, cfg.Sensitivity.Range, "default kept")
	assert.Equal(t, priority.DefaultEpsilon, cfg.Numeric.Epsilon, "default kept")

	sm, err := cfg.SolverMethod()
	require.NoError(t, err)
	assert.Equal(t, priority.MethodGeometricMean, sm)

	am, err := cfg.AggregationMethod()
	require.NoError(t, err)
	assert.Equal(t, group.KindWeightedGeometricMean, am.Kind())
	assert.Equal(t, []float64{2, 1, 1}, am.Weights())

	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"threshold":   "consistency:\n  threshold: -1\n",
		"epsilon":     "numeric:\n  epsilon: -0.5\n",
		"solver":      "solver:\n  method: power_iteration\n",
		"range":       "sensitivity:\n  range: 1.5\n",
		"steps":       "sensitivity:\n  steps: 0\n",
		"concurrency": "sensitivity:\n  concurrency: -2\n",
		"aggregation": "aggregation:\n  method: median\n",
		"weights":     "aggregation:\n  weights: [1, -1]\n",
		"cache":       "cache:\n  size: -1\n",
		"unknown key": "consistency:\n  treshold: 0.2\n",
		"wrong type":  "sensitivity:\n  steps: many\n",
		"log":         "log:\n  level: loud\n",
	}
	for name, content := range tests {
		name, content := name, content
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := config.Load(writeConfig(t, content))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()

	_, err := config.Load(writeConfig(t, "consistency: [unclosed\n"))
	assert.Error(t, err)
}
