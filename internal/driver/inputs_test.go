package driver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cssvalue/internal/lexer"
	"cssvalue/internal/token"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func names(ins []Input) []string {
	out := make([]string, len(ins))
	for i, in := range ins {
		out[i] = in.Name
	}
	return out
}

func TestLoaderValues(t *testing.T) {
	l := NewLoader(LoadOptions{})
	ins := l.Values("10px solid", "red")
	if len(ins) != 2 {
		t.Fatalf("got %d inputs", len(ins))
	}
	if ins[0].Name != "<arg1>" || ins[1].Name != "<arg2>" {
		t.Errorf("names = %v", names(ins))
	}
	if ins[0].Value != "10px solid" || ins[0].Span.Start != 0 || ins[0].Span.End != 10 {
		t.Errorf("first input = %+v", ins[0])
	}
	if ins[1].File == nil || ins[1].File.Text(ins[1].Span) != "red" {
		t.Error("value must be backed by a virtual file")
	}
}

func TestLoaderValuesKeepTrailingNewline(t *testing.T) {
	ins := NewLoader(LoadOptions{}).Values("a\n")
	if ins[0].Value != "a\n" || ins[0].Span.End != 2 {
		t.Fatalf("input = %+v", ins[0])
	}
	toks := lexer.Tokenize(ins[0].Value)
	if len(toks) != 2 || toks[1].Kind != token.Space {
		t.Errorf("tokens = %+v", toks)
	}
}

func TestLoaderFileSplitLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "v.cssv")
	writeFile(t, path, "\xEF\xBB\xBFred\r\n\r\n  \nurl(a.png)\n")

	l := NewLoader(LoadOptions{SplitLines: true})
	ins, err := l.File(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(ins) != 2 {
		t.Fatalf("inputs = %v", names(ins))
	}
	if ins[0].Value != "red" || !strings.HasSuffix(ins[0].Name, "v.cssv:1") {
		t.Errorf("first = %+v", ins[0])
	}
	if ins[1].Value != "url(a.png)" || !strings.HasSuffix(ins[1].Name, "v.cssv:4") {
		t.Errorf("second = %+v", ins[1])
	}
	start, _ := ins[1].File.Resolve(ins[1].Span)
	if start.Line != 4 || start.Col != 1 {
		t.Errorf("second starts at %d:%d", start.Line, start.Col)
	}
}

func TestLoaderFileWhole(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "v.cssv")
	writeFile(t, path, "a,\nb\n\n")

	ins, err := NewLoader(LoadOptions{}).File(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(ins) != 1 || ins[0].Value != "a,\nb" || ins[0].Span.End != 4 {
		t.Fatalf("inputs = %+v", ins)
	}
}

func TestLoaderDirFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.cssv"), "b")
	writeFile(t, filepath.Join(dir, "a.cssv"), "a")
	writeFile(t, filepath.Join(dir, "sub", "c.css"), "c")
	writeFile(t, filepath.Join(dir, "notes.txt"), "skip")

	l := NewLoader(LoadOptions{Extensions: []string{".cssv", ".css"}})
	ins, err := l.Args(dir)
	if err != nil {
		t.Fatal(err)
	}
	var values []string
	for _, in := range ins {
		values = append(values, in.Value)
	}
	if strings.Join(values, " ") != "a b c" {
		t.Fatalf("values = %v", values)
	}
}

func TestLoaderArgsMixed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "one.cssv")
	writeFile(t, path, "1px")

	l := NewLoader(LoadOptions{Stdin: strings.NewReader("from stdin\n")})
	ins, err := l.Args("bold", path, "-", "-")
	if err != nil {
		t.Fatal(err)
	}
	if len(ins) != 3 {
		t.Fatalf("inputs = %v", names(ins))
	}
	if ins[0].Value != "bold" || ins[1].Value != "1px" || ins[2].Value != "from stdin" {
		t.Errorf("values = %q %q %q", ins[0].Value, ins[1].Value, ins[2].Value)
	}
	if ins[2].Name != "<stdin>" {
		t.Errorf("stdin name = %q", ins[2].Name)
	}
}

func TestLoaderNFC(t *testing.T) {
	decomposed := "cafe\u0301"
	l := NewLoader(LoadOptions{Normalize: "nfc"})
	ins := l.Values(decomposed)
	if ins[0].Value != "caf\u00e9" {
		t.Errorf("value = %q", ins[0].Value)
	}

	raw := NewLoader(LoadOptions{Normalize: "none"}).Values(decomposed)
	if raw[0].Value != decomposed {
		t.Errorf("value changed without nfc: %q", raw[0].Value)
	}
}
