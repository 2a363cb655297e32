package fuzztests

import (
	"strings"
	"testing"
	"time"

	"cssvalue/internal/ast"
	"cssvalue/internal/parser"
	"cssvalue/internal/testkit"
	"cssvalue/internal/unit"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

func FuzzParserTree(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		src := clampInput(input)

		nodes := parser.Parse(src)
		if err := testkit.CheckTreeOrder(nodes, src); err != nil {
			t.Fatalf("tree broken on %q: %v", src, err)
		}
		if !ast.Equal(nodes, parser.Parse(src)) {
			t.Fatalf("parse is not deterministic on %q", src)
		}
	})
}

// FuzzParserNoHang runs each parse under a deadline.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)
	f.Add([]byte(strings.Repeat("(", 4096)))
	f.Add([]byte(strings.Repeat(")", 4096)))
	f.Add([]byte(strings.Repeat("url(", 512)))
	f.Add([]byte(strings.Repeat("\\", 1023)))

	f.Fuzz(func(t *testing.T, input []byte) {
		src := clampInput(input)

		done := make(chan struct{})
		go func() {
			defer close(done)
			_ = parser.Parse(src)
		}()

		select {
		case <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(src), truncateForLog(src, 200))
		}
	})
}

func FuzzUnitSplit(f *testing.F) {
	for _, s := range []string{".23rem", "1.1e--++1e", "+-2.", "", "-.5e1px", "1e+"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		d, ok := unit.Parse(s)
		if ok && d.Number+d.Unit != s {
			t.Fatalf("split of %q lost text: %q + %q", s, d.Number, d.Unit)
		}
		if !ok && (d.Number != "" || d.Unit != "") {
			t.Fatalf("rejected %q but returned %+v", s, d)
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input string, maxLen int) string {
	if len(input) <= maxLen {
		return input
	}
	return input[:maxLen] + "..."
}
