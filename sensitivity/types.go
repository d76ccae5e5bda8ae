// SPDX-License-Identifier: MIT

package sensitivity

import "github.com/katalvlaran/ahp/priority"

// RankChange records one label moving between the baseline and a
// perturbed ranking. Ranks are 1-based; Delta = NewRank − OldRank.
type RankChange struct {
	Label   string `json:"label" yaml:"label"`
	OldRank int    `json:"old_rank" yaml:"old_rank"`
	NewRank int    `json:"new_rank" yaml:"new_rank"`
	Delta   int    `json:"delta" yaml:"delta"`
}

// Reversal is a grid point whose ranking differs from the baseline.
type Reversal struct {
	Perturbation float64      `json:"perturbation" yaml:"perturbation"`
	Ranking      []string     `json:"ranking" yaml:"ranking"`
	Changes      []RankChange `json:"changes" yaml:"changes"`
}

// CriticalValues locates the reversals that matter most.
type CriticalValues struct {
	// FirstReversal is the perturbation of the earliest reversal in grid order.
	FirstReversal float64 `json:"first_reversal" yaml:"first_reversal"`

	// MostSensitive is the smallest |p| among reversals (earliest on ties).
	MostSensitive float64 `json:"most_sensitive" yaml:"most_sensitive"`
}

// Chart is plot-ready data: one weight trajectory per label, index-aligned
// with Perturbations.
type Chart struct {
	Perturbations []float64            `json:"perturbations" yaml:"perturbations"`
	Trajectories  map[string][]float64 `json:"trajectories" yaml:"trajectories"`
}

// Result is the outcome of perturbing one criterion.
type Result struct {
	Criterion   string          `json:"criterion" yaml:"criterion"`
	Range       float64         `json:"range" yaml:"range"`
	Coefficient float64         `json:"coefficient" yaml:"coefficient"`
	Reversals   []Reversal      `json:"reversals" yaml:"reversals"`
	Critical    *CriticalValues `json:"critical,omitempty" yaml:"critical,omitempty"`
	Chart       Chart           `json:"chart" yaml:"chart"`
	Baseline    priority.Result `json:"baseline" yaml:"baseline"`

	// Fallbacks counts grid points that failed to solve and reused the baseline.
	Fallbacks int `json:"fallbacks" yaml:"fallbacks"`
}

// Stable reports whether no perturbation changed the ranking.
func (r Result) Stable() bool { return len(r.Reversals) == 0 }
