// SPDX-License-Identifier: MIT

// Package sensitivity performs what-if analysis on a comparison matrix.
//
// One criterion's judgments are scaled by (1+p) along its row and by
// 1/(1+p) along its column for p on an even grid over [−r, +r]. Each
// perturbed matrix is re-solved and its ranking compared with the baseline
// ranking. The analysis reports:
//
//   - every grid point whose ranking differs (a rank reversal), with the
//     labels that moved;
//   - the first and the smallest-|p| reversal (critical values);
//   - the weight trajectory of every label (chart data);
//   - a sensitivity coefficient, the spread of the target's own weight
//     divided by the perturbation span 2r.
//
// Grid points are solved concurrently and collected in grid order. A point
// that fails to solve reuses the baseline weights, so trajectories are
// always complete.
package sensitivity
