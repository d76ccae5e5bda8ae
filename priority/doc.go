// SPDX-License-Identifier: MIT

// Package priority derives normalized weights from a pairwise comparison
// matrix and reports how consistent the judgments were.
//
// 🚀 Methods
//
//   - Eigenvector (Saaty): the principal right eigenvector of the table,
//     normalized to sum 1; λmax is its eigenvalue. Computed with gonum's
//     general (nonsymmetric) eigen decomposition.
//   - Geometric mean (row geometric mean method): row geometric means,
//     normalized; λmax ≈ mean((A·w)_i / w_i).
//
// Solve runs the eigenvector method and falls back to the geometric mean
// when the decomposition fails or yields an unusable principal vector. The
// fallback is logged at WARN and reported through WithFallbackHook.
// Tables with n ≤ 1 always take the geometric path.
//
// ⚙️ Usage:
//
//	res, err := priority.Solve(m, priority.WithThreshold(0.1))
//	fmt.Println(res.Rank, res.CR, res.Consistent)
//
// Complexity: O(n³) for the eigen path, O(n²) for the geometric path.
package priority
