// SPDX-License-Identifier: MIT

// Package pairwise models one evaluator's pairwise-comparison judgments.
//
// A Matrix is an n×n ratio table over an ordered, unique set of labels
// (criteria or alternatives). Cell (i, j) says how many times more important
// label i is than label j on Saaty's 1/9..9 scale; the table is reciprocal
// (a[j][i] = 1/a[i][j]) with ones on the diagonal.
//
// Construction:
//
//	m, err := pairwise.Build([]pairwise.Judgment{
//		{A: "cost", B: "quality", Value: 3},
//		{A: "cost", B: "risk", Value: 5},
//	}, []string{"cost", "quality", "risk"}, pairwise.WithEvaluator("alice"))
//
// Unjudged pairs default to 1 (equal importance). A Matrix is immutable:
// Reorder and ScaleCriterion return new instances, and accessors hand out
// copies, so matrices can be shared freely between goroutines.
package pairwise
