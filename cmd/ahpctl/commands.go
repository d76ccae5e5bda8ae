// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ahp/consensus"
	"github.com/katalvlaran/ahp/consistency"
	"github.com/katalvlaran/ahp/priority"
	"github.com/katalvlaran/ahp/sensitivity"
	"github.com/katalvlaran/ahp/synthesis"
)

// maxFlagged caps the judgments listed per inconsistent evaluator.
const maxFlagged = 3

type flaggedJudgment struct {
	A     string  `json:"a" yaml:"a"`
	B     string  `json:"b" yaml:"b"`
	Value float64 `json:"value" yaml:"value"`
	Score float64 `json:"score" yaml:"score"`
}

type evaluatorReport struct {
	Evaluator string            `json:"evaluator" yaml:"evaluator"`
	Result    priority.Result   `json:"result" yaml:"result"`
	Revisit   []flaggedJudgment `json:"revisit,omitempty" yaml:"revisit,omitempty"`
}

func newSolveCommand(a *app) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "solve <problem.yaml>",
		Short: "Solve every evaluator's matrix",
		Long: `Derive weights, λmax and the consistency ratio for each evaluator.

Inconsistent evaluators also get the judgments most at odds with their own
weights, so they know what to revisit. With --strict, any inconsistent
evaluator makes the command exit with status 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProblem(args[0])
			if err != nil {
				return err
			}
			ms, err := p.matrices(a.engine)
			if err != nil {
				return err
			}
			results, err := a.engine.SolveAll(cmd.Context(), ms)
			if err != nil {
				return err
			}

			reports := make([]evaluatorReport, len(ms))
			var inconsistent []string
			for i, res := range results {
				reports[i] = evaluatorReport{Evaluator: ms[i].EvaluatorID(), Result: res}
				if res.Consistent {
					continue
				}
				inconsistent = append(inconsistent, ms[i].EvaluatorID())
				devs, err := consistency.Inconsistencies(ms[i].Values(), res.Vector)
				if err != nil {
					a.logger.Warn("cannot locate inconsistent judgments", "evaluator", ms[i].EvaluatorID(), "error", err)
					continue
				}
				for _, d := range devs[:min(maxFlagged, len(devs))] {
					reports[i].Revisit = append(reports[i].Revisit, flaggedJudgment{
						A: res.Criteria[d.Row], B: res.Criteria[d.Col], Value: d.Value, Score: d.Score,
					})
				}
			}
			if err := a.print(cmd.OutOrStdout(), reports); err != nil {
				return err
			}
			if strict && len(inconsistent) > 0 {
				return &InconsistentError{Evaluators: inconsistent}
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with status 1 when any evaluator is inconsistent")

	return cmd
}

type aggregateReport struct {
	Method string          `json:"method" yaml:"method"`
	Matrix [][]float64     `json:"matrix" yaml:"matrix"`
	Result priority.Result `json:"result" yaml:"result"`
}

func newAggregateCommand(a *app) *cobra.Command {
	var method string
	cmd := &cobra.Command{
		Use:   "aggregate <problem.yaml>",
		Short: "Aggregate all evaluators into one group matrix and solve it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProblem(args[0])
			if err != nil {
				return err
			}
			ms, err := p.matrices(a.engine)
			if err != nil {
				return err
			}
			m, err := p.method(a, method)
			if err != nil {
				return err
			}
			g, err := a.engine.Aggregate(ms, m)
			if err != nil {
				return err
			}
			res, err := a.engine.Solve(g)
			if err != nil {
				return err
			}

			return a.print(cmd.OutOrStdout(), aggregateReport{Method: m.String(), Matrix: g.Rows(), Result: res})
		},
	}
	cmd.Flags().StringVarP(&method, "method", "m", "", "Aggregation method (overrides config): geometric_mean, arithmetic_mean or weighted_geometric_mean")

	return cmd
}

type consensusReport struct {
	consensus.Metrics `yaml:",inline"`
	Level             consensus.Level `json:"level" yaml:"level"`
}

func newConsensusCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "consensus <problem.yaml>",
		Short: "Measure agreement between evaluators",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProblem(args[0])
			if err != nil {
				return err
			}
			ms, err := p.matrices(a.engine)
			if err != nil {
				return err
			}
			cm, err := a.engine.Consensus(ms)
			if err != nil {
				return err
			}

			return a.print(cmd.OutOrStdout(), consensusReport{Metrics: cm, Level: cm.Level()})
		},
	}
}

func newSensitivityCommand(a *app) *cobra.Command {
	var (
		criterion string
		rng       float64
		steps     int
		all       bool
		method    string
	)
	cmd := &cobra.Command{
		Use:   "sensitivity <problem.yaml>",
		Short: "Perturb a criterion and report rank reversals",
		Long: `Scale one criterion's judgments by (1+p) for p across [-range, +range]
and report where the criteria ranking changes. Multiple evaluators are
aggregated first. --all sweeps every criterion.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && criterion == "" {
				return fmt.Errorf("either --criterion or --all is required")
			}
			p, err := loadProblem(args[0])
			if err != nil {
				return err
			}
			g, _, err := p.groupMatrix(a, method)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("range") {
				rng = a.cfg.Sensitivity.Range
			}
			if !cmd.Flags().Changed("steps") {
				steps = a.cfg.Sensitivity.Steps
			}

			if all {
				res, err := a.engine.AnalyzeAllSensitivity(cmd.Context(), g)
				if err != nil {
					return err
				}
				return a.print(cmd.OutOrStdout(), res)
			}
			res, err := a.engine.AnalyzeSensitivity(g, criterion, rng, steps)
			if err != nil {
				return err
			}

			return a.print(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&criterion, "criterion", "", "Criterion to perturb")
	cmd.Flags().Float64Var(&rng, "range", sensitivity.DefaultRange, "Perturbation range r, grid over [-r, +r]")
	cmd.Flags().IntVar(&steps, "steps", sensitivity.DefaultSteps, "Number of grid points")
	cmd.Flags().BoolVar(&all, "all", false, "Sweep every criterion (uses configured range and steps)")
	cmd.Flags().StringVarP(&method, "method", "m", "", "Aggregation method for multiple evaluators")

	return cmd
}

type synthesisReport struct {
	Criteria   map[string]float64 `json:"criteria" yaml:"criteria"`
	Scores     synthesis.Scores   `json:"scores" yaml:"scores"`
	Normalized map[string]float64 `json:"normalized" yaml:"normalized"`
	Rank       []string           `json:"rank" yaml:"rank"`
}

func newSynthesizeCommand(a *app) *cobra.Command {
	var method string
	cmd := &cobra.Command{
		Use:   "synthesize <problem.yaml>",
		Short: "Score alternatives against the (group) criteria weights",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProblem(args[0])
			if err != nil {
				return err
			}
			if len(p.Alternatives) == 0 {
				return fmt.Errorf("%s has no alternatives section", args[0])
			}
			g, _, err := p.groupMatrix(a, method)
			if err != nil {
				return err
			}
			weights, err := a.engine.Solve(g)
			if err != nil {
				return err
			}
			alts, err := p.alternativeMatrices(a.engine)
			if err != nil {
				return err
			}
			scores, err := a.engine.Synthesize(weights.Weights, alts)
			if err != nil {
				return err
			}
			norm, err := scores.Normalize()
			if err != nil {
				return err
			}

			return a.print(cmd.OutOrStdout(), synthesisReport{
				Criteria:   weights.Weights,
				Scores:     scores,
				Normalized: norm.Values,
				Rank:       scores.Rank(),
			})
		},
	}
	cmd.Flags().StringVarP(&method, "method", "m", "", "Aggregation method for multiple evaluators")

	return cmd
}
