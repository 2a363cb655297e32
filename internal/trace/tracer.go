package trace

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// Tracer is the main interface for emitting trace events.
type Tracer interface {
	// Emit records a trace event. Must be goroutine-safe.
	Emit(ev *Event)

	// Flush ensures all buffered events are written.
	Flush() error

	// Close flushes and releases resources.
	Close() error

	// Level returns the current tracing level.
	Level() Level

	// Enabled returns true if tracing is active (Level > LevelOff).
	Enabled() bool
}

// JournalOutput routes events to the systemd journal instead of a file.
const JournalOutput = "journal"

// Config holds tracer configuration.
type Config struct {
	Level  Level     // tracing level
	Format Format    // output format (FormatAuto picks per output path)
	Output io.Writer // if nil, use OutputPath
	// OutputPath is a comma-separated list of destinations: file paths,
	// "-" for stderr, or JournalOutput. Several destinations get every event.
	OutputPath string
}

// New creates a Tracer based on Config.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	if cfg.Output != nil {
		return NewStreamTracer(cfg.Output, cfg.Level, formatFor(cfg.Format, "")), nil
	}

	dests := splitOutputs(cfg.OutputPath)
	var (
		handlers []slog.Handler
		owned    closers
	)
	for _, dest := range dests {
		if dest == JournalOutput {
			h, err := newJournalHandler()
			if err != nil {
				warnStderr(cfg.Format, "systemd journal unavailable", err)
				if len(dests) == 1 {
					handlers = append(handlers, NewHandler(os.Stderr, formatFor(cfg.Format, "-")))
				}
				continue
			}
			handlers = append(handlers, h)
			continue
		}
		w, err := openOutput(dest)
		if err != nil {
			_ = owned.Close()
			return nil, err
		}
		if c, ok := w.(io.Closer); ok && !isStdStream(w) {
			owned = append(owned, c)
		}
		handlers = append(handlers, NewHandler(w, formatFor(cfg.Format, dest)))
	}

	t := NewHandlerTracer(cfg.Level, handlers...)
	if len(owned) > 0 {
		t.closer = owned
	}
	return t, nil
}

// formatFor resolves FormatAuto: ndjson for .ndjson/.json paths, text otherwise.
func formatFor(format Format, path string) Format {
	if format != FormatAuto {
		return format
	}
	if strings.HasSuffix(path, ".ndjson") || strings.HasSuffix(path, ".json") {
		return FormatNDJSON
	}
	return FormatText
}

func splitOutputs(list string) []string {
	var out []string
	for _, part := range strings.Split(list, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		out = []string{"-"}
	}
	return out
}

// newJournalHandler builds the journal handler with keys mapped to the
// journal field alphabet.
func newJournalHandler() (slog.Handler, error) {
	return slogjournal.NewHandler(&slogjournal.Options{
		Level:        slog.LevelDebug,
		ReplaceGroup: toJournalKey,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			a.Key = toJournalKey(a.Key)
			return a
		},
	})
}

func warnStderr(format Format, msg string, err error) {
	h := NewHandler(os.Stderr, formatFor(format, "-"))
	record := slog.NewRecord(time.Now(), slog.LevelWarn, msg, 0)
	record.Add("error", err)
	_ = h.Handle(context.Background(), record)
}

// toJournalKey maps attribute keys to the upper-case journal field alphabet.
func toJournalKey(key string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, strings.ToUpper(key))
}

// openOutput opens one destination; "-" is stderr.
func openOutput(dest string) (io.Writer, error) {
	if dest == "-" {
		return os.Stderr, nil
	}
	f, err := os.Create(dest)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace output: %w", err)
	}
	return f, nil
}

// Fanout combines several slog handlers into one.
func Fanout(handlers ...slog.Handler) slog.Handler {
	return slogmulti.Fanout(handlers...)
}

// closers closes every output the tracer opened.
type closers []io.Closer

func (cs closers) Close() error {
	var errs []error
	for _, c := range cs {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
