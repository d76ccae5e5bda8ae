// SPDX-License-Identifier: MIT

package sensitivity

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ahp/pairwise"
	"github.com/katalvlaran/ahp/priority"
)

const (
	opAnalyze    = "Analyze"
	opAnalyzeAll = "AnalyzeAll"
)

// step is the solved state at one grid point.
type step struct {
	vector   []float64
	ranking  []string
	fallback bool
}

// Grid returns steps evenly spaced points over [−r, +r]. A single step is
// the baseline point 0.
func Grid(r float64, steps int) []float64 {
	if steps <= 1 {
		return []float64{0}
	}
	out := make([]float64, steps)
	span := 2 * r / float64(steps-1)
	for k := range out {
		out[k] = -r + span*float64(k)
	}
	out[steps-1] = r

	return out
}

// Analyze perturbs target over the grid and reports rank reversals.
// It is AnalyzeContext with a background context.
func Analyze(m *pairwise.Matrix, target string, opts ...Option) (Result, error) {
	return AnalyzeContext(context.Background(), m, target, opts...)
}

// AnalyzeContext perturbs target over the grid and reports rank reversals.
//
// Implementation:
//   - Stage 1: validate inputs, solve the baseline.
//   - Stage 2: solve every grid point concurrently into an indexed slot;
//     failures reuse the baseline and are logged.
//   - Stage 3: walk the slots in grid order to build trajectories,
//     reversals, critical values and the coefficient.
//
// Errors:
//   - ErrNilMatrix, ErrUnknownCriterion, ErrInvalidRange, ErrInvalidSteps.
//   - Baseline solve errors (the input itself is malformed).
//   - ctx.Err() when cancelled.
func AnalyzeContext(ctx context.Context, m *pairwise.Matrix, target string, opts ...Option) (Result, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opAnalyze, err)
	}
	if m == nil {
		return Result{}, fmt.Errorf("%s: %w", opAnalyze, ErrNilMatrix)
	}
	if _, ok := m.Index(target); !ok {
		return Result{}, fmt.Errorf("%s: %q: %w", opAnalyze, target, ErrUnknownCriterion)
	}
	baseline, err := priority.Solve(m, o.solve...)
	if err != nil {
		return Result{}, fmt.Errorf("%s: baseline: %w", opAnalyze, err)
	}

	return analyze(ctx, m, target, baseline, o)
}

func analyze(ctx context.Context, m *pairwise.Matrix, target string, baseline priority.Result, o options) (Result, error) {
	grid := Grid(o.rng, o.steps)
	steps := make([]step, len(grid))

	g, gctx := errgroup.WithContext(ctx)
	if o.concurrency > 0 {
		g.SetLimit(o.concurrency)
	}
	for k, p := range grid {
		k, p := k, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			steps[k] = solveStep(m, target, p, baseline, o)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opAnalyze, err)
	}

	return collect(target, grid, steps, baseline, o.rng), nil
}

// solveStep never fails: any error yields the baseline state.
func solveStep(m *pairwise.Matrix, target string, p float64, baseline priority.Result, o options) step {
	scaled, err := m.ScaleCriterion(target, 1+p)
	if err == nil {
		var res priority.Result
		if res, err = priority.Solve(scaled, o.solve...); err == nil {
			return step{vector: res.Vector, ranking: res.Rank}
		}
	}
	o.logger.Warn("sensitivity step failed, using baseline weights",
		"criterion", target,
		"perturbation", p,
		"error", err)

	return step{vector: baseline.Vector, ranking: baseline.Rank, fallback: true}
}

func collect(target string, grid []float64, steps []step, baseline priority.Result, r float64) Result {
	criteria := baseline.Criteria
	res := Result{
		Criterion: target,
		Range:     r,
		Baseline:  baseline,
		Chart: Chart{
			Perturbations: grid,
			Trajectories:  make(map[string][]float64, len(criteria)),
		},
	}
	for i, c := range criteria {
		i, c := i, c
		traj := make([]float64, len(steps))
		for k, s := range steps {
			traj[k] = s.vector[i]
		}
		res.Chart.Trajectories[c] = traj
	}

	oldRank := make(map[string]int, len(baseline.Rank))
	for pos, c := range baseline.Rank {
		oldRank[c] = pos + 1
	}
	for k, s := range steps {
		if s.fallback {
			res.Fallbacks++
		}
		changes := diff(oldRank, s.ranking)
		if len(changes) == 0 {
			continue
		}
		res.Reversals = append(res.Reversals, Reversal{
			Perturbation: grid[k],
			Ranking:      s.ranking,
			Changes:      changes,
		})
	}
	res.Critical = critical(res.Reversals)
	res.Coefficient = coefficient(res.Chart.Trajectories[target], r)

	return res
}

// diff lists every label whose position differs from oldRank, in the new
// ranking's order.
func diff(oldRank map[string]int, ranking []string) []RankChange {
	var out []RankChange
	for pos, c := range ranking {
		nr := pos + 1
		if prev := oldRank[c]; prev != nr {
			out = append(out, RankChange{Label: c, OldRank: prev, NewRank: nr, Delta: nr - prev})
		}
	}

	return out
}

func critical(rev []Reversal) *CriticalValues {
	if len(rev) == 0 {
		return nil
	}
	cv := &CriticalValues{FirstReversal: rev[0].Perturbation, MostSensitive: rev[0].Perturbation}
	for _, r := range rev[1:] {
		if math.Abs(r.Perturbation) < math.Abs(cv.MostSensitive) {
			cv.MostSensitive = r.Perturbation
		}
	}

	return cv
}

// coefficient is (max − min)/(2r), 0 for ≤ 1 point or r == 0.
func coefficient(traj []float64, r float64) float64 {
	if len(traj) <= 1 || r == 0 {
		return 0
	}
	lo, hi := traj[0], traj[0]
	for _, v := range traj[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	return (hi - lo) / (2 * r)
}

// AnalyzeAll runs Analyze for every criterion of m, concurrently, and
// returns the results in criteria order. The baseline is solved once.
func AnalyzeAll(ctx context.Context, m *pairwise.Matrix, opts ...Option) ([]Result, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAnalyzeAll, err)
	}
	if m == nil {
		return nil, fmt.Errorf("%s: %w", opAnalyzeAll, ErrNilMatrix)
	}
	baseline, err := priority.Solve(m, o.solve...)
	if err != nil {
		return nil, fmt.Errorf("%s: baseline: %w", opAnalyzeAll, err)
	}

	criteria := m.Criteria()
	out := make([]Result, len(criteria))
	g, gctx := errgroup.WithContext(ctx)
	if o.concurrency > 0 {
		g.SetLimit(o.concurrency)
	}
	for i, c := range criteria {
		i, c := i, c
		g.Go(func() error {
			res, err := analyze(gctx, m, c, baseline, o)
			if err != nil {
				return err
			}
			out[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", opAnalyzeAll, err)
	}

	return out, nil
}
