// SPDX-License-Identifier: MIT

// Command katona inspects puzzle grids, validates experiment files and
// replays scripted participant input through a puzzle session.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds the state shared by all subcommands.
type app struct {
	verbose bool
	level   zap.AtomicLevel
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{level: zap.NewAtomicLevelAt(zapcore.InfoLevel), logger: zap.NewNop()}
	root := &cobra.Command{
		Use:   "katona",
		Short: "Matchstick puzzle engine for Katona five-squares experiments",
		Long: `katona drives the five-squares matchstick puzzle: a diamond grid of stick
cells, a pointer-driven mover, a solution verifier and an impasse detector.

Hosts embed the session package; this command exposes the same engine for
inspection and offline replay.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			if a.verbose {
				a.level.SetLevel(zapcore.DebugLevel)
			}
			cfg.Level = a.level
			l, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newGridCmd(a))
	root.AddCommand(newValidateCmd(a))
	root.AddCommand(newReplayCmd(a))
	root.AddCommand(newTrainCmd(a))
	return root
}

// applyLevel adopts the experiment's log level unless --verbose was given.
func (a *app) applyLevel(name string) error {
	if a.verbose {
		return nil
	}
	lvl, err := zapcore.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	a.level.SetLevel(lvl)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
