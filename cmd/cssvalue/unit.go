package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cssvalue/internal/valfmt"
)

func newUnitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unit [flags] <value>...",
		Short: "Split dimensions into number and unit",
		Long:  `Unit decomposes each argument like 12px, -.5e3em or 50% into its number and unit`,
		Args:  cobra.MinimumNArgs(1),
		RunE:  runUnit,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runUnit(cmd *cobra.Command, args []string) error {
	s := sessionFrom(cmd)
	format, err := resolveFormat(cmd, s.cfg, "pretty", "json")
	if err != nil {
		return err
	}

	outs := make([]valfmt.UnitOutput, 0, len(args))
	for _, a := range args {
		outs = append(outs, valfmt.NewUnitOutput(a))
	}

	return s.timer.Track("render", func() (string, error) {
		if format == "json" {
			return fmt.Sprintf("%d values", len(outs)), valfmt.FormatUnitsJSON(cmd.OutOrStdout(), outs)
		}
		return fmt.Sprintf("%d values", len(outs)), valfmt.FormatUnitsPretty(cmd.OutOrStdout(), outs)
	})
}
