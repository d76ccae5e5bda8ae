// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/ahp/config"
	"github.com/katalvlaran/ahp/consensus"
	"github.com/katalvlaran/ahp/group"
	"github.com/katalvlaran/ahp/pairwise"
	"github.com/katalvlaran/ahp/priority"
	"github.com/katalvlaran/ahp/sensitivity"
	"github.com/katalvlaran/ahp/synthesis"
)

// Engine runs AHP operations under one configuration.
type Engine struct {
	cfg         config.Config
	logger      *slog.Logger
	metrics     *Metrics
	aggregation group.Method
	solveOpts   []priority.Option
	cache       *solveCache
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger for the engine and every component it calls.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMetrics enables counters. A nil m disables them.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// New validates cfg and builds an Engine.
func New(cfg config.Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	method, err := cfg.SolverMethod()
	if err != nil {
		return nil, err
	}
	agg, err := cfg.AggregationMethod()
	if err != nil {
		return nil, err
	}

	e := &Engine{cfg: cfg, logger: slog.Default(), aggregation: agg}
	for _, set := range opts {
		set(e)
	}
	if cfg.Cache.Size > 0 {
		if e.cache, err = newSolveCache(cfg.Cache.Size); err != nil {
			return nil, err
		}
	}

	e.solveOpts = []priority.Option{
		priority.WithThreshold(cfg.Consistency.Threshold),
		priority.WithEpsilon(cfg.Numeric.Epsilon),
		priority.WithLogger(e.logger),
		priority.WithFallbackHook(e.metrics.observeFallback),
	}
	if method != "" {
		e.solveOpts = append(e.solveOpts, priority.WithMethod(method))
	}

	return e, nil
}

// Config returns the settings the engine was built with.
func (e *Engine) Config() config.Config { return e.cfg }

// CacheStats reports solve cache usage; zero when caching is disabled.
func (e *Engine) CacheStats() CacheStats { return e.cache.stats() }

// DefaultAggregation returns the configured aggregation method.
func (e *Engine) DefaultAggregation() group.Method { return e.aggregation }

// BuildMatrix assembles one evaluator's comparison matrix.
func (e *Engine) BuildMatrix(judgments []pairwise.Judgment, criteria []string, evaluator string) (*pairwise.Matrix, error) {
	return pairwise.Build(judgments, criteria, pairwise.WithEvaluator(evaluator))
}

// Solve derives weights and consistency for m. Identical matrices are
// served from the solve cache when one is configured.
func (e *Engine) Solve(m *pairwise.Matrix) (priority.Result, error) {
	var key string
	if e.cache != nil && m != nil {
		key = matrixKey(m)
		if res, ok := e.cache.get(key); ok {
			e.metrics.observeCacheHit()
			return res, nil
		}
	}

	res, err := priority.Solve(m, e.solveOpts...)
	if err != nil {
		return priority.Result{}, err
	}
	e.metrics.observeSolve(string(res.Method))
	if key != "" {
		e.cache.add(key, res)
	}
	if !res.Consistent {
		e.logger.Info("judgments exceed consistency threshold",
			"evaluator", m.EvaluatorID(),
			"cr", res.CR,
			"threshold", res.Threshold)
	}

	return res, nil
}

// SolveAll solves ms concurrently, results in input order.
func (e *Engine) SolveAll(ctx context.Context, ms []*pairwise.Matrix) ([]priority.Result, error) {
	res, err := priority.SolveAll(ctx, ms, e.cfg.Sensitivity.Concurrency, e.solveOpts...)
	if err != nil {
		return nil, err
	}
	for _, r := range res {
		e.metrics.observeSolve(string(r.Method))
	}

	return res, nil
}

// Aggregate combines evaluator matrices into one group matrix.
func (e *Engine) Aggregate(ms []*pairwise.Matrix, method group.Method) (*pairwise.Matrix, error) {
	return group.Aggregate(ms, method)
}

// Consensus measures agreement between evaluator matrices.
func (e *Engine) Consensus(ms []*pairwise.Matrix) (consensus.Metrics, error) {
	return e.consensus(context.Background(), ms)
}

func (e *Engine) consensus(ctx context.Context, ms []*pairwise.Matrix) (consensus.Metrics, error) {
	return consensus.AnalyzeContext(ctx, ms,
		consensus.WithConcurrency(e.cfg.Sensitivity.Concurrency),
		consensus.WithTieEpsilon(e.cfg.Numeric.Epsilon),
		consensus.WithSolverOptions(e.solveOpts...))
}

// AnalyzeSensitivity perturbs criterion over [−rng, +rng] in steps points.
func (e *Engine) AnalyzeSensitivity(m *pairwise.Matrix, criterion string, rng float64, steps int) (sensitivity.Result, error) {
	res, err := sensitivity.Analyze(m, criterion, e.sensitivityOptions(rng, steps)...)
	if err != nil {
		return sensitivity.Result{}, err
	}
	e.metrics.observeReversals(len(res.Reversals))

	return res, nil
}

// AnalyzeAllSensitivity sweeps every criterion with the configured range and steps.
func (e *Engine) AnalyzeAllSensitivity(ctx context.Context, m *pairwise.Matrix) ([]sensitivity.Result, error) {
	all, err := sensitivity.AnalyzeAll(ctx, m, e.sensitivityOptions(e.cfg.Sensitivity.Range, e.cfg.Sensitivity.Steps)...)
	if err != nil {
		return nil, err
	}
	for _, r := range all {
		e.metrics.observeReversals(len(r.Reversals))
	}

	return all, nil
}

func (e *Engine) sensitivityOptions(rng float64, steps int) []sensitivity.Option {
	return []sensitivity.Option{
		sensitivity.WithRange(rng),
		sensitivity.WithSteps(steps),
		sensitivity.WithConcurrency(e.cfg.Sensitivity.Concurrency),
		sensitivity.WithLogger(e.logger),
		sensitivity.WithSolverOptions(e.solveOpts...),
	}
}

// Synthesize combines criterion weights with per-criterion alternative matrices.
func (e *Engine) Synthesize(weights map[string]float64, alternatives map[string]*pairwise.Matrix) (synthesis.Scores, error) {
	return synthesis.Synthesize(weights, alternatives,
		synthesis.WithLogger(e.logger),
		synthesis.WithSolverOptions(e.solveOpts...))
}

// Decision is the outcome of a full group run.
type Decision struct {
	Matrix    *pairwise.Matrix  `json:"-" yaml:"-"`
	Result    priority.Result   `json:"result" yaml:"result"`
	Consensus consensus.Metrics `json:"consensus" yaml:"consensus"`
}

// GroupDecision aggregates ms with method, solves the group matrix and
// measures consensus between the individual matrices.
func (e *Engine) GroupDecision(ctx context.Context, ms []*pairwise.Matrix, method group.Method) (Decision, error) {
	agg, err := e.Aggregate(ms, method)
	if err != nil {
		return Decision{}, fmt.Errorf("GroupDecision: %w", err)
	}
	res, err := e.Solve(agg)
	if err != nil {
		return Decision{}, fmt.Errorf("GroupDecision: %w", err)
	}
	cm, err := e.consensus(ctx, ms)
	if err != nil {
		return Decision{}, fmt.Errorf("GroupDecision: %w", err)
	}
	e.logger.Debug("group decision",
		"evaluators", len(ms),
		"method", method.String(),
		"kendall_w", cm.KendallW,
		"level", string(cm.Level()))

	return Decision{Matrix: agg, Result: res, Consensus: cm}, nil
}
