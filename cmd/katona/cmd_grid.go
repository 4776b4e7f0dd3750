// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/katona/grid"
)

func newGridCmd(a *app) *cobra.Command {
	opts := grid.DefaultOptions()
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the cell table of a grid",
		Long: `Prints every cell in linear order with its centred index, orientation and
position. The table is the addressing used by experiment files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grid.New(opts)
			if err != nil {
				return err
			}
			a.logger.Debug("grid built", zap.Int("field_size", g.FieldSize()), zap.Int("cells", g.Len()))

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "LINEAR\tINDEX\tORIENTATION\tX\tY")
			for i, e := range g.Elements() {
				fmt.Fprintf(w, "%d\t%v\t%v\t%g\t%g\n", i, e.Index, e.Orientation, e.Position.X, e.Position.Y)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cells: %d, outer border: %g\n", g.Len(), g.OuterBorder())
			return nil
		},
	}
	cmd.Flags().IntVarP(&opts.FieldSize, "field-size", "n", opts.FieldSize, "Squares per side (odd)")
	cmd.Flags().Float64Var(&opts.UnitLength, "unit-length", opts.UnitLength, "Stick length")
	cmd.Flags().Float64Var(&opts.UnitThickness, "unit-thickness", opts.UnitThickness, "Stick thickness")
	return cmd
}
