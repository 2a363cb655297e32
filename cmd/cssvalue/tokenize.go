package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"cssvalue/internal/driver"
	"cssvalue/internal/lexer"
	"cssvalue/internal/trace"
	"cssvalue/internal/valfmt"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] [value|file|dir|-]...",
		Short: "Split CSS values into tokens",
		Long:  `Tokenize prints the flat token stream of every input value with its byte span`,
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	addInputFlags(cmd)
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	s := sessionFrom(cmd)
	format, err := resolveFormat(cmd, s.cfg, "pretty", "json")
	if err != nil {
		return err
	}

	var inputs []driver.Input
	err = s.timer.Track("load", func() (string, error) {
		var loadErr error
		inputs, _, loadErr = collectInputs(cmd, args, s.cfg)
		return fmt.Sprintf("%d inputs", len(inputs)), loadErr
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	tr := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx).SpanID
	out := cmd.OutOrStdout()

	return s.timer.Track("render", func() (string, error) {
		total := 0
		for i, in := range inputs {
			span := trace.Begin(tr, trace.ScopeInput, "tokenize", parent)
			tokens := lexer.Tokenize(in.Value)
			span.WithExtra("name", in.Name).WithExtra("tokens", strconv.Itoa(len(tokens))).End("")
			total += len(tokens)

			if err := writeHeader(out, s, format == "pretty" && len(inputs) > 1, i, in); err != nil {
				return "", err
			}
			var err error
			switch format {
			case "json":
				err = valfmt.FormatTokensJSON(out, tokens)
			default:
				err = valfmt.FormatTokensPretty(out, tokens, &valfmt.Locator{File: in.File, Base: in.Span.Start})
			}
			if err != nil {
				return "", err
			}
		}
		return fmt.Sprintf("%d tokens", total), nil
	})
}

// writeHeader separates the outputs of several inputs in pretty formats.
func writeHeader(w io.Writer, s *session, show bool, i int, in driver.Input) error {
	if !show || s.quiet {
		return nil
	}
	sep := ""
	if i > 0 {
		sep = "\n"
	}
	_, err := fmt.Fprintf(w, "%s== %s ==\n", sep, in.Name)
	return err
}
