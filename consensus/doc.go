// SPDX-License-Identifier: MIT

// Package consensus measures how much a panel of evaluators agrees.
//
// Each evaluator's matrix is solved into a priority vector; the vectors are
// compared three ways:
//
//   - Kendall's W (coefficient of concordance) over the evaluators' rankings,
//     0 = no agreement, 1 = identical rankings.
//   - Mean pairwise Spearman ρ between rankings, in [-1, 1].
//   - Consensus index 1/(1 + mean coefficient of variation) over the raw
//     weights, in (0, 1].
//
// Fewer than two evaluators is trivially unanimous: every metric is 1.
package consensus
