package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cssvalue/internal/ast"
	"cssvalue/internal/driver"
)

func newStringifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stringify [flags] [value|file|dir|-]...",
		Short: "Parse values and print them back",
		Long: `Stringify parses every input and prints the text rebuilt from the tree.
With --check it fails when a value does not round-trip, which happens only for
unterminated comments and functions.`,
		RunE: runStringify,
	}
	cmd.Flags().Bool("check", false, "fail when the rebuilt text differs from the input")
	cmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	addInputFlags(cmd)
	return cmd
}

func runStringify(cmd *cobra.Command, args []string) error {
	s := sessionFrom(cmd)
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return fmt.Errorf("failed to get check flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	inputs, _, err := collectInputs(cmd, args, s.cfg)
	if err != nil {
		return err
	}

	var results []driver.Result
	err = s.timer.Track("parse", func() (string, error) {
		var parseErr error
		results, parseErr = driver.ParseAll(cmd.Context(), inputs, driver.Options{Jobs: jobs})
		return parseNote(results), parseErr
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var mismatched []string
	for _, res := range results {
		text := ast.Stringify(res.Nodes)
		if text != res.Input.Value {
			mismatched = append(mismatched, res.Input.Name)
		}
		if _, err := fmt.Fprintln(out, text); err != nil {
			return err
		}
	}

	if check && len(mismatched) > 0 {
		if !s.quiet {
			for _, name := range mismatched {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: does not round-trip\n", name)
			}
		}
		return fmt.Errorf("%d of %d values do not round-trip", len(mismatched), len(results))
	}
	return nil
}
