// Package ahp is an Analytic Hierarchy Process calculation engine: it turns
// pairwise-comparison judgments into normalized priority weights, checks
// judgment consistency, aggregates several evaluators into a group decision,
// measures evaluator consensus, and runs sensitivity (what-if) analysis on
// the resulting rankings.
//
// 🚀 What is AHP?
//
//	An evaluator compares criteria two at a time on Saaty's 1/9..9 scale
//	("cost is 3 times as important as quality"). The reciprocal ratio table
//	built from those judgments has a principal eigenvector, and that
//	vector, normalized, is the priority of each criterion. How far the
//	principal eigenvalue λmax strays from n tells how consistent the
//	judgments were.
//
// ✨ Packages, leaf to root:
//
//	matrix/      - dense numeric kernels (log/exp, row geometric means, L1 norms)
//	pairwise/    - immutable reciprocal comparison matrices over labels
//	consistency/ - CI, RI, CR and the inconsistent-judgment locator
//	priority/    - eigenvector solver with geometric-mean fallback
//	group/       - geometric / arithmetic / weighted aggregation (AIJ, AIP)
//	consensus/   - Kendall's W, Spearman ρ, consensus index
//	sensitivity/ - perturbation grid, rank reversals, critical values
//	synthesis/   - global alternative scores
//	engine/      - configured facade with logging and Prometheus metrics
//	config/      - YAML configuration (koanf)
//	cmd/ahpctl/  - command line runner
//
// Quick example:
//
//	m, _ := pairwise.Build([]pairwise.Judgment{
//		{A: "A", B: "B", Value: 3},
//		{A: "A", B: "C", Value: 5},
//		{A: "B", B: "C", Value: 2},
//	}, []string{"A", "B", "C"})
//	res, _ := priority.Solve(m)
//	// res.Rank == [A B C], res.Weights["A"] ≈ 0.648, res.CR ≈ 0.004
//
// Everything is pure computation on immutable values, so every operation is
// safe to run concurrently.
//
//	go get github.com/katalvlaran/ahp
package ahp
