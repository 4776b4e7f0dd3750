// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/katona/config"
)

func newValidateCmd(a *app) *cobra.Command {
	var (
		path string
		dump bool
	)
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate an experiment file",
		Long: `Loads an experiment file over the built-in defaults and checks it: field
sizes, movable sticks and every solution index must exist on the grid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			a.logger.Debug("experiment loaded", zap.String("path", path))
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ok: field size %d, %d sticks, %d solutions\n",
				cfg.Grid.FieldSize, len(cfg.Movable), cfg.Solutions.Len())
			if dump {
				data, err := cfg.Marshal()
				if err != nil {
					return err
				}
				fmt.Fprint(out, string(data))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "", "Experiment file (required)")
	cmd.Flags().BoolVar(&dump, "print", false, "Print the resolved experiment")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}
