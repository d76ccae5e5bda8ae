// SPDX-License-Identifier: MIT

package priority

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/ahp/consistency"
)

// DefaultEpsilon is the weight difference below which two labels tie in Rank.
const DefaultEpsilon = 1e-9

const (
	panicThresholdInvalid = "priority: WithThreshold: threshold must be finite, non-negative"
	panicEpsilonInvalid   = "priority: WithEpsilon: eps must be finite, non-negative"
	panicMethodInvalid    = "priority: WithMethod: unknown method"
)

// Option configures Solve. Constructors panic only on programmer error.
type Option func(*solveOptions)

type solveOptions struct {
	method     Method // "" = eigenvector with geometric fallback
	threshold  float64
	eps        float64
	logger     *slog.Logger
	onFallback func(error)
}

// WithMethod forces one method. MethodEigenvector disables the fallback, so
// Solve then returns ErrEigenFailed like SolveEigen.
func WithMethod(m Method) Option {
	if m != MethodEigenvector && m != MethodGeometricMean {
		panic(panicMethodInvalid)
	}

	return func(o *solveOptions) { o.method = m }
}

// WithThreshold sets the CR acceptance bound (default 0.1).
func WithThreshold(t float64) Option {
	if t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
		panic(panicThresholdInvalid)
	}

	return func(o *solveOptions) { o.threshold = t }
}

// WithEpsilon sets the ranking tie tolerance.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *solveOptions) { o.eps = eps }
}

// WithLogger routes fallback warnings to l. nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *solveOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithFallbackHook registers fn to be called with the eigen error whenever
// Solve falls back to the geometric mean.
func WithFallbackHook(fn func(error)) Option {
	return func(o *solveOptions) { o.onFallback = fn }
}

func gatherOptions(user ...Option) solveOptions {
	o := solveOptions{
		threshold: consistency.DefaultThreshold,
		eps:       DefaultEpsilon,
		logger:    slog.Default(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
