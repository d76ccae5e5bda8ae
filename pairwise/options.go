// SPDX-License-Identifier: MIT

package pairwise

// DefaultStrictScale leaves scale validation to the caller: Build only
// rejects values no ratio table can hold.
const DefaultStrictScale = false

// Option configures construction. Later options win.
type Option func(*buildOptions)

type buildOptions struct {
	evaluatorID string
	strictScale bool
}

// WithEvaluator tags the matrix with an evaluator identifier, used only for
// traceability in group operations.
func WithEvaluator(id string) Option {
	return func(o *buildOptions) { o.evaluatorID = id }
}

// WithStrictScale makes Build run ValidateJudgments first, so any value
// outside [1/9, 9] (zero included) fails with ErrJudgmentOutOfScale.
func WithStrictScale() Option {
	return func(o *buildOptions) { o.strictScale = true }
}

func gatherOptions(user ...Option) buildOptions {
	o := buildOptions{strictScale: DefaultStrictScale}
	for _, set := range user {
		set(&o)
	}

	return o
}
