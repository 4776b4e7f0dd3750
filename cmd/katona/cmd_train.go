// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/katona/clock"
	"github.com/katalvlaran/katona/config"
	"github.com/katalvlaran/katona/grid"
	"github.com/katalvlaran/katona/training"
)

var errTrainingDisabled = errors.New("training is disabled in the experiment")

func newTrainCmd(a *app) *cobra.Command {
	var cfgPath, scriptPath string
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Replay a scripted participant through the tutorial",
		Long: `Runs a script through the tutorial stages on the training field and prints
each stage as it is entered. Step "button: true" clicks the tutorial button.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.train(cmd.OutOrStdout(), cfgPath, scriptPath)
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Experiment file (required)")
	cmd.Flags().StringVarP(&scriptPath, "script", "s", "", "Script file (required)")
	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("script")
	return cmd
}

func (a *app) train(out io.Writer, cfgPath, scriptPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if !cfg.Training.Enabled {
		return errTrainingDisabled
	}
	if err := a.applyLevel(cfg.Logging.Level); err != nil {
		return err
	}
	sc, err := loadScript(scriptPath)
	if err != nil {
		return err
	}
	g, err := grid.New(cfg.TrainingGrid())
	if err != nil {
		return err
	}
	ticks, err := sc.ticks(g)
	if err != nil {
		return err
	}

	clk := clock.NewManual(0)
	tr, err := training.NewTrainer(g, clk, training.DefaultStages(), training.WithLogger(a.logger))
	if err != nil {
		return err
	}
	printStage(out, tr)
	for _, t := range ticks {
		clk.Set(t.At)
		changed, err := tr.Tick(t.Input.Pointer, t.Button)
		if err != nil {
			return err
		}
		if changed {
			printStage(out, tr)
		}
		if tr.Finished() {
			break
		}
	}
	if !tr.Finished() {
		_, i := tr.Stage()
		return fmt.Errorf("training stopped in stage %d", i)
	}
	return nil
}

func printStage(out io.Writer, tr *training.Trainer) {
	st, i := tr.Stage()
	if tr.Finished() {
		fmt.Fprintln(out, "training finished")
		return
	}
	fmt.Fprintf(out, "stage %d: %s (%d sticks)\n", i, st.Instruction, len(tr.Pieces()))
}
