// SPDX-License-Identifier: MIT

package sensitivity

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/ahp/priority"
)

// Defaults for Analyze.
const (
	DefaultRange = 0.1
	DefaultSteps = 20
)

// Option configures Analyze and AnalyzeAll.
type Option func(*options)

type options struct {
	rng         float64
	steps       int
	concurrency int
	logger      *slog.Logger
	solve       []priority.Option
}

// WithRange sets r, the grid spans [−r, +r]. Validated by Analyze.
func WithRange(r float64) Option {
	return func(o *options) { o.rng = r }
}

// WithSteps sets the number of grid points. Validated by Analyze.
func WithSteps(n int) Option {
	return func(o *options) { o.steps = n }
}

// WithConcurrency bounds parallel solves (≤ 0 = unbounded, the default).
func WithConcurrency(n int) Option {
	return func(o *options) { o.concurrency = n }
}

// WithLogger routes step-fallback warnings to l. nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSolverOptions forwards options to every priority.Solve call.
func WithSolverOptions(opts ...priority.Option) Option {
	return func(o *options) { o.solve = append(o.solve, opts...) }
}

func gatherOptions(user ...Option) (options, error) {
	o := options{rng: DefaultRange, steps: DefaultSteps, logger: slog.Default()}
	for _, set := range user {
		set(&o)
	}
	if o.rng < 0 || o.rng >= 1 || math.IsNaN(o.rng) {
		return o, fmt.Errorf("range %g: %w", o.rng, ErrInvalidRange)
	}
	if o.steps < 1 {
		return o, fmt.Errorf("steps %d: %w", o.steps, ErrInvalidSteps)
	}

	return o, nil
}
