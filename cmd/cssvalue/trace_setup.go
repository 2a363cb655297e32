package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cssvalue/internal/config"
	"cssvalue/internal/trace"
)

// setupTracing builds the tracer from the [trace] settings, attaches it to
// the command context and opens the command's driver span. The returned
// cleanup ends the span and closes the tracer.
func setupTracing(cmd *cobra.Command, tc config.TraceConfig) (func(), error) {
	level, err := trace.ParseLevel(tc.Level)
	if err != nil {
		return nil, err
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func() {}, nil
	}

	format, err := trace.ParseFormat(tc.Format)
	if err != nil {
		return nil, err
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Format:     format,
		OutputPath: tc.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	span := trace.Begin(tracer, trace.ScopeDriver, cmd.CommandPath(), 0)
	ctx := trace.WithTracer(cmd.Context(), tracer)
	ctx = trace.WithSpanContext(ctx, trace.SpanContext{SpanID: span.ID()})
	cmd.SetContext(ctx)

	cleanup := func() {
		span.End("")
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}
	return cleanup, nil
}
