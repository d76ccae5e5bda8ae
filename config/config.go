// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/katalvlaran/ahp/consistency"
	"github.com/katalvlaran/ahp/group"
	"github.com/katalvlaran/ahp/priority"
	"github.com/katalvlaran/ahp/sensitivity"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// SolverAuto selects the eigenvector method with geometric-mean fallback.
const SolverAuto = "auto"

// Config holds engine-wide settings.
type Config struct {
	Consistency Consistency `yaml:"consistency"`
	Numeric     Numeric     `yaml:"numeric"`
	Solver      Solver      `yaml:"solver"`
	Sensitivity Sensitivity `yaml:"sensitivity"`
	Aggregation Aggregation `yaml:"aggregation"`
	Cache       Cache       `yaml:"cache"`
	Log         Log         `yaml:"log"`
}

// Consistency configures the CR acceptance bound.
type Consistency struct {
	Threshold float64 `yaml:"threshold"`
}

// Numeric configures tie tolerances.
type Numeric struct {
	Epsilon float64 `yaml:"epsilon"`
}

// Solver selects the weight derivation method.
type Solver struct {
	Method string `yaml:"method"`
}

// Sensitivity configures perturbation sweeps.
type Sensitivity struct {
	Range       float64 `yaml:"range"`
	Steps       int     `yaml:"steps"`
	Concurrency int     `yaml:"concurrency"`
}

// Aggregation configures group aggregation.
type Aggregation struct {
	Method  string    `yaml:"method"`
	Weights []float64 `yaml:"weights"`
}

// Cache sizes the engine's solve cache. Zero disables it.
type Cache struct {
	Size int `yaml:"size"`
}

// DefaultCacheSize is the number of solved matrices kept by default.
const DefaultCacheSize = 128

// Log configures the log level.
type Log struct {
	Level string `yaml:"level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Consistency: Consistency{Threshold: consistency.DefaultThreshold},
		Numeric:     Numeric{Epsilon: priority.DefaultEpsilon},
		Solver:      Solver{Method: SolverAuto},
		Sensitivity: Sensitivity{Range: sensitivity.DefaultRange, Steps: sensitivity.DefaultSteps},
		Aggregation: Aggregation{Method: group.GeometricMean().String()},
		Cache:       Cache{Size: DefaultCacheSize},
		Log:         Log{Level: "info"},
	}
}

// Load reads path over Default() and validates the result.
// Unknown keys and mistyped values are rejected as ErrInvalidConfig.
func Load(path string) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("failed to load config from %q: %w", path, err)
	}

	cfg := Default()
	conf := koanf.UnmarshalConf{
		Tag: "yaml",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			ErrorUnused:      true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, conf); err != nil {
		return Config{}, fmt.Errorf("failed to parse config from %q: %w: %w", path, err, ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation failed for %q: %w", path, err)
	}

	return cfg, nil
}

// Validate checks ranges and names.
func (c Config) Validate() error {
	if !finiteNonNegative(c.Consistency.Threshold) {
		return invalid("consistency.threshold %g must be finite and >= 0", c.Consistency.Threshold)
	}
	if !finiteNonNegative(c.Numeric.Epsilon) {
		return invalid("numeric.epsilon %g must be finite and >= 0", c.Numeric.Epsilon)
	}
	if _, err := c.SolverMethod(); err != nil {
		return invalid("solver.method: %v", err)
	}
	if !finiteNonNegative(c.Sensitivity.Range) || c.Sensitivity.Range >= 1 {
		return invalid("sensitivity.range %g must be in [0, 1)", c.Sensitivity.Range)
	}
	if c.Sensitivity.Steps < 1 {
		return invalid("sensitivity.steps %d must be >= 1", c.Sensitivity.Steps)
	}
	if c.Sensitivity.Concurrency < 0 {
		return invalid("sensitivity.concurrency %d must be >= 0", c.Sensitivity.Concurrency)
	}
	if _, err := c.AggregationMethod(); err != nil {
		return invalid("aggregation.method: %v", err)
	}
	for i, w := range c.Aggregation.Weights {
		if !finiteNonNegative(w) {
			return invalid("aggregation.weights[%d] %g must be finite and >= 0", i, w)
		}
	}
	if c.Cache.Size < 0 {
		return invalid("cache.size %d must be >= 0", c.Cache.Size)
	}
	if _, err := c.LogLevel(); err != nil {
		return invalid("log.level: %v", err)
	}

	return nil
}

// SolverMethod returns the forced priority method, or "" for SolverAuto.
func (c Config) SolverMethod() (priority.Method, error) {
	if c.Solver.Method == "" || c.Solver.Method == SolverAuto {
		return "", nil
	}

	return priority.ParseMethod(c.Solver.Method)
}

// AggregationMethod builds the configured group.Method.
func (c Config) AggregationMethod() (group.Method, error) {
	return group.ParseMethod(c.Aggregation.Method, c.Aggregation.Weights)
}

// LogLevel parses Log.Level (case-insensitive; empty means info).
func (c Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(c.Log.Level))); err != nil {
		return slog.LevelInfo, err
	}

	return lvl, nil
}

func finiteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig)
}
