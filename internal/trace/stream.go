package trace

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// StreamTracer turns events into slog records on a handler.
type StreamTracer struct {
	handler slog.Handler
	closer  io.Closer // output owned by the tracer, may be nil
	level   Level
}

// NewStreamTracer creates a tracer writing format to w. The tracer closes
// w on Close when w is an io.Closer other than stdout or stderr.
func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	var closer io.Closer
	if c, ok := w.(io.Closer); ok && !isStdStream(w) {
		closer = c
	}
	return newSlogTracer(NewHandler(w, format), closer, level)
}

// NewHandlerTracer creates a tracer over existing handlers, fanned out when
// there is more than one.
func NewHandlerTracer(level Level, handlers ...slog.Handler) *StreamTracer {
	var h slog.Handler
	switch len(handlers) {
	case 0:
		h = slog.DiscardHandler
	case 1:
		h = handlers[0]
	default:
		h = Fanout(handlers...)
	}
	return newSlogTracer(h, nil, level)
}

func newSlogTracer(h slog.Handler, closer io.Closer, level Level) *StreamTracer {
	return &StreamTracer{handler: h, closer: closer, level: level}
}

// Emit writes an event to the output.
func (t *StreamTracer) Emit(ev *Event) {
	if ev == nil {
		return
	}
	failure := ev.Kind == KindFailure
	if !failure && !t.level.ShouldEmit(ev.Scope) {
		return
	}

	lvl := slogLevel(ev.Scope)
	if failure {
		lvl = slog.LevelError
	}
	ctx := context.Background()
	if !t.handler.Enabled(ctx, lvl) {
		return
	}

	record := slog.NewRecord(ev.Time, lvl, ev.Name, 0)
	record.AddAttrs(eventAttrs(ev)...)
	// Best-effort write: a broken trace sink must not fail the run.
	_ = t.handler.Handle(ctx, record)
}

// Flush is a no-op: slog handlers write through.
func (t *StreamTracer) Flush() error {
	return nil
}

// Close releases the output file, if the tracer opened one.
func (t *StreamTracer) Close() error {
	if t.closer != nil {
		return t.closer.Close()
	}
	return nil
}

// Level returns the current tracing level.
func (t *StreamTracer) Level() Level {
	return t.level
}

// Enabled returns true if tracing is active.
func (t *StreamTracer) Enabled() bool {
	return t.level > LevelOff
}

func isStdStream(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (f == os.Stdout || f == os.Stderr)
}
