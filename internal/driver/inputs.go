package driver

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/text/unicode/norm"

	"cssvalue/internal/source"
)

// StdinArg selects standard input.
const StdinArg = "-"

// Input is one CSS value to process. Span locates Value inside File.
type Input struct {
	Name  string
	Value string
	Span  source.Span
	File  *source.File
}

// LoadOptions mirror the [input] section of cssvalue.toml.
type LoadOptions struct {
	Extensions []string
	SplitLines bool
	// Normalize is "none" or "nfc".
	Normalize string
	// Stdin is read for "-"; nil means os.Stdin.
	Stdin io.Reader
}

// Loader turns command arguments into inputs backed by one FileSet.
type Loader struct {
	Files *source.FileSet
	Opts  LoadOptions

	stdinUsed bool
	literals  int
}

func NewLoader(opts LoadOptions) *Loader {
	return &Loader{Files: source.NewFileSet(), Opts: opts}
}

// Values wraps literal value strings verbatim. Each becomes a virtual file
// so every input can be located the same way.
func (l *Loader) Values(values ...string) []Input {
	out := make([]Input, 0, len(values))
	for _, v := range values {
		l.literals++
		name := fmt.Sprintf("<arg%d>", l.literals)
		id := l.Files.AddVirtual(name, l.normalize([]byte(v)))
		file := l.Files.Get(id)
		out = append(out, spanInput(name, file, string(file.Content)))
	}
	return out
}

// Args resolves each argument: "-" is stdin, an existing directory is walked,
// an existing file is loaded, anything else is a literal value.
func (l *Loader) Args(args ...string) ([]Input, error) {
	var out []Input
	for _, arg := range args {
		if arg == StdinArg {
			ins, err := l.Stdin()
			if err != nil {
				return nil, err
			}
			out = append(out, ins...)
			continue
		}
		st, err := os.Stat(arg)
		switch {
		case err == nil && st.IsDir():
			ins, err := l.Dir(arg)
			if err != nil {
				return nil, err
			}
			out = append(out, ins...)
		case err == nil:
			ins, err := l.File(arg)
			if err != nil {
				return nil, err
			}
			out = append(out, ins...)
		case errors.Is(err, fs.ErrNotExist):
			out = append(out, l.Values(arg)...)
		default:
			return nil, fmt.Errorf("failed to stat %q: %w", arg, err)
		}
	}
	return out, nil
}

// Stdin reads standard input once; a second "-" yields nothing.
func (l *Loader) Stdin() ([]Input, error) {
	if l.stdinUsed {
		return nil, nil
	}
	l.stdinUsed = true
	r := l.Opts.Stdin
	if r == nil {
		r = os.Stdin
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	id, err := l.Files.LoadReader("<stdin>", bytes.NewReader(l.normalize(content)))
	if err != nil {
		return nil, err
	}
	return l.split(l.Files.Get(id)), nil
}

// File loads path and splits it per SplitLines.
func (l *Loader) File(path string) ([]Input, error) {
	// #nosec G304 -- path is provided by the user
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	id := l.Files.LoadBytes(path, l.normalize(content))
	return l.split(l.Files.Get(id)), nil
}

// Dir loads every file under dir whose extension is listed, in path order.
func (l *Loader) Dir(dir string) ([]Input, error) {
	paths, err := listValueFiles(dir, l.Opts.Extensions)
	if err != nil {
		return nil, err
	}
	var out []Input
	for _, p := range paths {
		ins, err := l.File(p)
		if err != nil {
			return nil, err
		}
		out = append(out, ins...)
	}
	return out, nil
}

func (l *Loader) normalize(content []byte) []byte {
	if l.Opts.Normalize == "nfc" {
		return norm.NFC.Bytes(content)
	}
	return content
}

func (l *Loader) split(file *source.File) []Input {
	if !l.Opts.SplitLines {
		return []Input{wholeInput(file.Path, file)}
	}
	var out []Input
	for i, sp := range file.Lines() {
		text := file.Text(sp)
		if strings.TrimSpace(text) == "" {
			continue
		}
		out = append(out, Input{
			Name:  fmt.Sprintf("%s:%d", file.Path, i+1),
			Value: text,
			Span:  sp,
			File:  file,
		})
	}
	return out
}

// wholeInput covers the file without its trailing newlines.
func wholeInput(name string, file *source.File) Input {
	return spanInput(name, file, strings.TrimRight(string(file.Content), "\n"))
}

// spanInput covers the prefix of file holding text.
func spanInput(name string, file *source.File, text string) Input {
	end, err := safecast.Conv[uint32](len(text))
	if err != nil {
		panic(fmt.Errorf("value length overflow: %w", err))
	}
	sp := source.Span{File: file.ID, Start: 0, End: end}
	return Input{Name: name, Value: text, Span: sp, File: file}
}

// listValueFiles returns the sorted files under dir matching exts.
func listValueFiles(dir string, exts []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && slices.Contains(exts, filepath.Ext(path)) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
