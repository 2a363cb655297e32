package trace_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cssvalue/internal/trace"
)

type record struct {
	Msg      string            `json:"msg"`
	Level    string            `json:"level"`
	Kind     string            `json:"kind"`
	Scope    string            `json:"scope"`
	SpanID   uint64            `json:"span_id"`
	ParentID uint64            `json:"parent_id"`
	Detail   string            `json:"detail"`
	Extra    map[string]string `json:"extra"`
}

func decode(t *testing.T, buf *bytes.Buffer) []record {
	t.Helper()
	var out []record
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var r record
		if err := json.Unmarshal([]byte(line), &r); err != nil {
			t.Fatalf("bad ndjson line %q: %v", line, err)
		}
		out = append(out, r)
	}
	return out
}

func TestSpanBeginEnd(t *testing.T) {
	var buf bytes.Buffer
	tr, err := trace.New(trace.Config{Level: trace.LevelDetail, Format: trace.FormatNDJSON, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}

	root := trace.Begin(tr, trace.ScopeDriver, "parse", 0)
	child := trace.Begin(tr, trace.ScopeInput, "input:1", root.ID())
	child.WithExtra("nodes", "3").End("")
	root.End("done")

	recs := decode(t, &buf)
	if len(recs) != 4 {
		t.Fatalf("expected 4 records, got %d: %s", len(recs), buf.String())
	}
	if recs[0].Kind != "begin" || recs[0].Msg != "parse" || recs[0].Scope != "driver" {
		t.Errorf("unexpected first record %+v", recs[0])
	}
	if recs[1].ParentID != root.ID() || recs[1].Level != "DEBUG" {
		t.Errorf("child begin %+v", recs[1])
	}
	if recs[2].Extra["nodes"] != "3" {
		t.Errorf("child end extra %+v", recs[2].Extra)
	}
	if recs[3].Kind != "end" || recs[3].Detail != "done" {
		t.Errorf("root end %+v", recs[3])
	}
}

func TestLevelFiltersScopes(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelPhase, trace.FormatNDJSON)

	trace.Begin(tr, trace.ScopePass, "parse", 0).End("")
	trace.Begin(tr, trace.ScopeInput, "input:1", 0).End("")
	trace.Point(tr, trace.ScopeInput, "cache-hit", "", 0)

	recs := decode(t, &buf)
	if len(recs) != 2 {
		t.Fatalf("phase level must drop input scope, got %d records", len(recs))
	}
}

func TestFailureAlwaysEmitted(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelError, trace.FormatNDJSON)

	trace.Begin(tr, trace.ScopeDriver, "parse", 0).End("")
	trace.Failure(tr, trace.ScopeInput, "load", errors.New("boom"), 0)

	recs := decode(t, &buf)
	if len(recs) != 1 || recs[0].Kind != "failure" || recs[0].Level != "ERROR" || recs[0].Detail != "boom" {
		t.Fatalf("unexpected records %+v", recs)
	}
}

func TestHandlerTracerFanout(t *testing.T) {
	var a, b bytes.Buffer
	tr := trace.NewHandlerTracer(trace.LevelDebug,
		trace.NewHandler(&a, trace.FormatNDJSON),
		trace.NewHandler(&b, trace.FormatText),
	)
	trace.Point(tr, trace.ScopePass, "render", "tree", 0)

	if len(decode(t, &a)) != 1 {
		t.Errorf("json sink: %q", a.String())
	}
	if !strings.Contains(b.String(), "msg=render") {
		t.Errorf("text sink: %q", b.String())
	}
}

func TestNopAndOff(t *testing.T) {
	tr, err := trace.New(trace.Config{Level: trace.LevelOff})
	if err != nil {
		t.Fatal(err)
	}
	if tr.Enabled() || tr != trace.Nop {
		t.Fatal("LevelOff must yield Nop")
	}
	sp := trace.Begin(tr, trace.ScopeDriver, "x", 0)
	if sp.ID() != 0 || sp.End("") != 0 {
		t.Fatal("nop span must be inert")
	}
}

func TestContextPropagation(t *testing.T) {
	if trace.FromContext(context.Background()) != trace.Nop {
		t.Fatal("empty context must give Nop")
	}
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelDebug, trace.FormatText)
	ctx := trace.WithTracer(context.Background(), tr)
	if trace.FromContext(ctx) != trace.Tracer(tr) {
		t.Fatal("tracer not propagated")
	}
	ctx = trace.WithSpanContext(ctx, trace.SpanContext{SpanID: 7})
	if trace.CurrentSpan(ctx).SpanID != 7 {
		t.Fatal("span context not propagated")
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	for _, s := range []string{"off", "error", "phase", "detail", "DEBUG"} {
		lvl, err := trace.ParseLevel(s)
		if err != nil || !strings.EqualFold(lvl.String(), s) {
			t.Errorf("ParseLevel(%q) = %v, %v", s, lvl, err)
		}
	}
	if _, err := trace.ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
	if f, err := trace.ParseFormat("ndjson"); err != nil || f != trace.FormatNDJSON {
		t.Errorf("ParseFormat(ndjson) = %v, %v", f, err)
	}
	if _, err := trace.ParseFormat("chrome"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestNewFansOutToSeveralFiles(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "trace.ndjson")
	textPath := filepath.Join(dir, "trace.log")

	tr, err := trace.New(trace.Config{Level: trace.LevelPhase, OutputPath: jsonPath + ", " + textPath})
	if err != nil {
		t.Fatal(err)
	}
	trace.Begin(tr, trace.ScopeDriver, "cssvalue parse", 0).End("")
	if err := tr.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatal(err)
	}
	if recs := decode(t, bytes.NewBuffer(data)); len(recs) != 2 || recs[0].Msg != "cssvalue parse" {
		t.Errorf("ndjson output: %s", data)
	}
	text, err := os.ReadFile(textPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(text), `msg="cssvalue parse"`) {
		t.Errorf("text output: %s", text)
	}
}

func TestNewBadPath(t *testing.T) {
	_, err := trace.New(trace.Config{Level: trace.LevelPhase, OutputPath: filepath.Join(t.TempDir(), "missing", "t.log")})
	if err == nil {
		t.Fatal("expected error for unwritable trace path")
	}
}
