// SPDX-License-Identifier: MIT

package consensus

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ahp/group"
	"github.com/katalvlaran/ahp/pairwise"
	"github.com/katalvlaran/ahp/priority"
)

// Option configures Analyze.
type Option func(*options)

type options struct {
	concurrency int
	eps         float64
	solve       []priority.Option
}

// WithConcurrency bounds parallel solves (≤ 0 = unbounded, the default).
func WithConcurrency(n int) Option {
	return func(o *options) { o.concurrency = n }
}

// WithTieEpsilon sets the weight difference below which ranks are shared.
func WithTieEpsilon(eps float64) Option {
	return func(o *options) { o.eps = eps }
}

// WithSolverOptions forwards options to every priority.Solve call.
func WithSolverOptions(opts ...priority.Option) Option {
	return func(o *options) { o.solve = append(o.solve, opts...) }
}

// Analyze solves every matrix and measures agreement between the results.
// It is AnalyzeContext with a background context.
func Analyze(matrices []*pairwise.Matrix, opts ...Option) (Metrics, error) {
	return AnalyzeContext(context.Background(), matrices, opts...)
}

// AnalyzeContext is Analyze with cancellation between solves.
//
// Implementation:
//   - Stage 1: fewer than two matrices → Unanimous.
//   - Stage 2: group.Align (same label set, first matrix's order).
//   - Stage 3: priority.SolveAll, one weight row per evaluator.
//   - Stage 4: ranks → Kendall's W and mean Spearman ρ; weights → Index.
//
// Errors: ErrDimensionMismatch, ErrNilMatrix, solver errors, ctx.Err().
func AnalyzeContext(ctx context.Context, matrices []*pairwise.Matrix, opts ...Option) (Metrics, error) {
	if len(matrices) < 2 {
		return Unanimous(len(matrices)), nil
	}
	o := options{eps: priority.DefaultEpsilon}
	for _, set := range opts {
		set(&o)
	}

	aligned, err := group.Align(matrices)
	if err != nil {
		return Metrics{}, fmt.Errorf("Analyze: %w", err)
	}
	results, err := priority.SolveAll(ctx, aligned, o.concurrency, o.solve...)
	if err != nil {
		return Metrics{}, fmt.Errorf("Analyze: %w", err)
	}

	weights := make([][]float64, len(results))
	ranks := make([][]float64, len(results))
	for k, r := range results {
		weights[k] = r.Vector
		ranks[k] = Ranks(r.Vector, o.eps)
	}

	return Metrics{
		KendallW:       KendallW(ranks),
		SpearmanRho:    MeanSpearman(ranks),
		ConsensusIndex: Index(weights),
		Evaluators:     len(matrices),
	}, nil
}
