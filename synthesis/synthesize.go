// SPDX-License-Identifier: MIT

package synthesis

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/katalvlaran/ahp/matrix"
	"github.com/katalvlaran/ahp/pairwise"
	"github.com/katalvlaran/ahp/priority"
)

// ErrNilMatrix is returned when an alternatives matrix is nil.
var ErrNilMatrix = pairwise.ErrNilMatrix

// Option configures Synthesize.
type Option func(*options)

type options struct {
	logger *slog.Logger
	solve  []priority.Option
}

// WithLogger routes skipped-criterion warnings to l. nil keeps slog.Default().
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

// Scores maps alternatives to global scores; Labels keeps a deterministic
// order (first appearance over criteria sorted by name).
type Scores struct {
	Labels []string           `json:"labels" yaml:"labels"`
	Values map[string]float64 `json:"values" yaml:"values"`
}

// Synthesize solves each alternatives matrix and accumulates
// criteriaWeights[c] · w_alt into every alternative's score.
//
// Errors:
//   - ErrNilMatrix for a nil matrix.
//   - priority.Solve errors, wrapped with the criterion name.
func Synthesize(criteriaWeights map[string]float64, alternatives map[string]*pairwise.Matrix, opts ...Option) (Scores, error) {
	o := options{logger: slog.Default()}
	for _, set := range opts {
		set(&o)
	}

	criteria := make([]string, 0, len(alternatives))
	for c := range alternatives {
		criteria = append(criteria, c)
	}
	sort.Strings(criteria)

	out := Scores{Values: make(map[string]float64)}
	for _, c := range criteria {
		m := alternatives[c]
		if m == nil {
			return Scores{}, fmt.Errorf("Synthesize: criterion %q: %w", c, ErrNilMatrix)
		}
		for _, alt := range m.Criteria() {
			if _, seen := out.Values[alt]; !seen {
				out.Values[alt] = 0
				out.Labels = append(out.Labels, alt)
			}
		}
	}

	for _, c := range criteria {
		wc, ok := criteriaWeights[c]
		if !ok {
			o.logger.Warn("criterion has no weight, skipping", "criterion", c)
			continue
		}
		res, err := priority.Solve(alternatives[c], o.solve...)
		if err != nil {
			return Scores{}, fmt.Errorf("Synthesize: criterion %q: %w", c, err)
		}
		for alt, w := range res.Weights {
			out.Values[alt] += wc * w
		}
	}

	return out, nil
}

// Normalize returns a copy whose values sum to 1.
// Errors: matrix.ErrZeroSum when every score is zero.
func (s Scores) Normalize() (Scores, error) {
	raw := make([]float64, len(s.Labels))
	for i, l := range s.Labels {
		raw[i] = s.Values[l]
	}
	norm, _, err := matrix.NormalizeL1(raw)
	if err != nil {
		return Scores{}, fmt.Errorf("Normalize: %w", err)
	}
	out := Scores{Labels: append([]string(nil), s.Labels...), Values: make(map[string]float64, len(s.Labels))}
	for i, l := range s.Labels {
		out.Values[l] = norm[i]
	}

	return out, nil
}

// Rank orders labels by descending score; near-ties keep Labels order.
func (s Scores) Rank() []string {
	v := make([]float64, len(s.Labels))
	for i, l := range s.Labels {
		v[i] = s.Values[l]
	}

	return priority.Rank(s.Labels, v, priority.DefaultEpsilon)
}
