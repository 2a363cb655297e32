package trace

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Format represents the output format for trace events.
type Format uint8

const (
	FormatAuto   Format = iota // pick by output path
	FormatText                 // slog text lines
	FormatNDJSON               // one JSON object per line
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatNDJSON:
		return "ndjson"
	default:
		return "auto"
	}
}

// ParseFormat converts a string to Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "text":
		return FormatText, nil
	case "ndjson", "json":
		return FormatNDJSON, nil
	default:
		return FormatAuto, fmt.Errorf("invalid trace format: %q (expected: auto|text|ndjson)", s)
	}
}

// NewHandler builds the slog handler writing format to w. Filtering is done
// by Level.ShouldEmit, so the handler accepts everything.
func NewHandler(w io.Writer, format Format) slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	if format == FormatNDJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// eventAttrs flattens an event into record attributes.
func eventAttrs(ev *Event) []slog.Attr {
	attrs := make([]slog.Attr, 0, 8)
	attrs = append(attrs,
		slog.Uint64("seq", ev.Seq),
		slog.String("kind", ev.Kind.String()),
		slog.String("scope", ev.Scope.String()),
	)
	if ev.SpanID != 0 {
		attrs = append(attrs, slog.Uint64("span_id", ev.SpanID))
	}
	if ev.ParentID != 0 {
		attrs = append(attrs, slog.Uint64("parent_id", ev.ParentID))
	}
	if ev.GID != 0 {
		attrs = append(attrs, slog.Uint64("gid", ev.GID))
	}
	if ev.Detail != "" {
		attrs = append(attrs, slog.String("detail", ev.Detail))
	}
	if len(ev.Extra) > 0 {
		extra := make([]any, 0, len(ev.Extra))
		for k, v := range ev.Extra {
			extra = append(extra, slog.String(k, v))
		}
		attrs = append(attrs, slog.Group("extra", extra...))
	}
	return attrs
}
