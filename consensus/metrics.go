// SPDX-License-Identifier: MIT

package consensus

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Level is a coarse reading of Kendall's W.
type Level string

const (
	LevelStrong   Level = "strong"
	LevelModerate Level = "moderate"
	LevelWeak     Level = "weak"
)

// Level bands on Kendall's W.
const (
	StrongAgreement   = 0.8
	ModerateAgreement = 0.6
)

// Metrics summarizes agreement across evaluators.
type Metrics struct {
	KendallW       float64 `json:"kendall_w" yaml:"kendall_w"`
	SpearmanRho    float64 `json:"spearman_rho" yaml:"spearman_rho"`
	ConsensusIndex float64 `json:"consensus_index" yaml:"consensus_index"`
	Evaluators     int     `json:"evaluators" yaml:"evaluators"`
}

// Unanimous returns the metrics of a panel with fewer than two evaluators.
func Unanimous(evaluators int) Metrics {
	return Metrics{KendallW: 1, SpearmanRho: 1, ConsensusIndex: 1, Evaluators: evaluators}
}

// Level bands KendallW: ≥ 0.8 strong, ≥ 0.6 moderate, otherwise weak.
func (m Metrics) Level() Level {
	switch {
	case m.KendallW >= StrongAgreement:
		return LevelStrong
	case m.KendallW >= ModerateAgreement:
		return LevelModerate
	default:
		return LevelWeak
	}
}

// Ranks converts weights to ranks, 1 for the largest. Weights within eps
// share the average of the ranks they span.
func Ranks(weights []float64, eps float64) []float64 {
	n := len(weights)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return weights[idx[a]] > weights[idx[b]] })

	ranks := make([]float64, n)
	for start := 0; start < n; {
		end := start + 1
		for end < n && weights[idx[start]]-weights[idx[end]] <= eps {
			end++
		}
		// positions start..end-1 hold ranks start+1..end
		avg := float64(start+1+end) / 2
		for k := start; k < end; k++ {
			ranks[idx[k]] = avg
		}
		start = end
	}

	return ranks
}

// KendallW computes the coefficient of concordance for m rank vectors over
// n items: W = 12S / (m²(n³ − n)), clamped to [0, 1]. Fewer than two items
// or raters yields 1.
func KendallW(ranks [][]float64) float64 {
	m := len(ranks)
	if m < 2 {
		return 1
	}
	n := len(ranks[0])
	if n < 2 {
		return 1
	}
	sums := make([]float64, n)
	for _, r := range ranks {
		for j, v := range r {
			sums[j] += v
		}
	}
	mean := float64(m) * float64(n+1) / 2
	var s float64
	for _, r := range sums {
		s += (r - mean) * (r - mean)
	}
	mf, nf := float64(m), float64(n)
	w := 12 * s / (mf * mf * (nf*nf*nf - nf))

	return math.Max(0, math.Min(1, w))
}

// MeanSpearman averages the Spearman correlation of every pair of rank
// vectors (Pearson correlation of ranks). Undefined pairs (constant ranks)
// are skipped. With no defined pair the result is 1 when all rank vectors
// are identical and 0 otherwise.
func MeanSpearman(ranks [][]float64) float64 {
	var (
		acc float64
		cnt int
	)
	for a := 0; a < len(ranks); a++ {
		for b := a + 1; b < len(ranks); b++ {
			rho := stat.Correlation(ranks[a], ranks[b], nil)
			if math.IsNaN(rho) {
				continue
			}
			acc += rho
			cnt++
		}
	}
	if cnt > 0 {
		return acc / float64(cnt)
	}
	for k := 1; k < len(ranks); k++ {
		for j := range ranks[0] {
			if ranks[k][j] != ranks[0][j] {
				return 0
			}
		}
	}

	return 1
}

// Index returns 1/(1 + mean CV), where CV is the population coefficient of
// variation of one criterion's weights across evaluators. Columns with zero
// mean are skipped; with none left the index is 1.
func Index(weights [][]float64) float64 {
	if len(weights) == 0 {
		return 1
	}
	n := len(weights[0])
	col := make([]float64, len(weights))
	var (
		acc float64
		cnt int
	)
	for j := 0; j < n; j++ {
		for k, w := range weights {
			col[k] = w[j]
		}
		mean, std := stat.PopMeanStdDev(col, nil)
		if mean == 0 || math.IsNaN(mean) {
			continue
		}
		acc += std / mean
		cnt++
	}
	if cnt == 0 {
		return 1
	}

	return 1 / (1 + acc/float64(cnt))
}
