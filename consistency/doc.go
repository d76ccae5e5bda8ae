// SPDX-License-Identifier: MIT

// Package consistency measures how coherent a set of pairwise judgments is.
//
// Saaty's consistency index compares the principal eigenvalue λmax of an
// n×n comparison table with n (the eigenvalue of a perfectly consistent
// table):
//
//	CI = (λmax − n) / (n − 1)
//	CR = CI / RI(n)
//
// RI(n) is the mean CI of random reciprocal tables of size n. A ratio at or
// below 0.1 is conventionally acceptable. Tables with n ≤ 2 are always
// consistent (CR = 0).
//
// Inconsistencies goes one step further and points at the judgments that
// deviate most from the derived weights, so they can be revisited.
package consistency
