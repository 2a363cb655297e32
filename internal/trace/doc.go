// Package trace records spans and point events for the cssvalue tools.
//
// Events are emitted as log/slog records, so the same trace can go to a
// terminal, an NDJSON file or the systemd journal.
//
// # Usage
//
//	cssvalue parse --trace=- --trace-level=detail 'rgba(0,0,0,.5)'
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: failures only
//   - LevelPhase: command and pass boundaries
//   - LevelDetail: one span per input value
//   - LevelDebug: everything
//
// # Scopes
//
//   - ScopeDriver: a CLI command
//   - ScopePass: tokenize, parse, render
//   - ScopeInput: a single value
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "parse", parentID)
//	defer span.End("")
package trace
