// SPDX-License-Identifier: MIT

// Package synthesis combines criterion weights with per-criterion
// alternative comparisons into global alternative scores:
//
//	score(alt) = Σ_c w_c · w_alt|c
//
// An alternative absent from some criterion's matrix simply collects
// nothing from it. Criteria without a weight are skipped (and logged).
// Scores are not renormalized; call Scores.Normalize when a distribution is
// needed.
package synthesis
