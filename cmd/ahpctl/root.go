// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ahp/config"
	"github.com/katalvlaran/ahp/engine"
)

var version = "dev"

// app carries what PersistentPreRunE prepares for subcommands.
type app struct {
	configPath string
	logLevel   string
	output     string

	cfg    config.Config
	logger *slog.Logger
	engine *engine.Engine
	runID  string
}

func newRootCommand() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "ahpctl",
		Short: "ahpctl - Analytic Hierarchy Process calculator",
		Long: `ahpctl derives priority weights from pairwise comparisons.

It reads a YAML problem file (criteria, evaluators with their judgments,
and optional per-criterion alternative judgments) and prints weights,
consistency, group aggregates, consensus, sensitivity and synthesized
scores as YAML or JSON.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Engine configuration file (YAML)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides config)")
	cmd.PersistentFlags().StringVarP(&a.output, "output", "o", "yaml", "Output format: yaml or json")

	cmd.AddCommand(newSolveCommand(a))
	cmd.AddCommand(newAggregateCommand(a))
	cmd.AddCommand(newConsensusCommand(a))
	cmd.AddCommand(newSensitivityCommand(a))
	cmd.AddCommand(newSynthesizeCommand(a))

	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	if a.output != formatYAML && a.output != formatJSON {
		return fmt.Errorf("unsupported output %q: must be yaml or json", a.output)
	}

	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	a.runID = uuid.NewString()
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})).
		With("run_id", a.runID)
	a.cfg = cfg

	if a.engine, err = engine.New(cfg, engine.WithLogger(a.logger)); err != nil {
		return err
	}
	a.logger.Debug("engine ready", "command", cmd.Name(), "config", a.configPath)

	return nil
}

func execute() error {
	return newRootCommand().Execute()
}
