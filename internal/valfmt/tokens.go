package valfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"cssvalue/internal/source"
	"cssvalue/internal/token"
)

// Locator places value-relative spans inside the file the value came from.
// A nil Locator, or one without a File, prints raw byte offsets.
type Locator struct {
	File *source.File
	Base uint32 // offset of the value inside File
}

// Span rebases sp into the file.
func (l *Locator) Span(sp source.Span) source.Span {
	if l == nil || l.File == nil {
		return sp
	}
	return sp.In(l.File.ID, l.Base)
}

// Where renders sp as line:col-line:col, or start-end without a file.
func (l *Locator) Where(sp source.Span) string {
	if l == nil || l.File == nil {
		return fmt.Sprintf("%d-%d", sp.Start, sp.End)
	}
	start, end := l.File.Resolve(l.Span(sp))
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

type TokenOutput struct {
	Kind  string `json:"kind" msgpack:"kind"`
	Text  string `json:"text" msgpack:"text"`
	Start uint32 `json:"start" msgpack:"start"`
	End   uint32 `json:"end" msgpack:"end"`
}

// FormatTokensPretty prints one token per line: index, kind, quoted text, position.
func FormatTokensPretty(w io.Writer, tokens []token.Token, loc *Locator) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%3d: %-14s %-20q at %s\n", i+1, tok.Kind.String(), tok.Text, loc.Where(tok.Span)); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON writes tokens as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Start: tok.Start(),
			End:   tok.End(),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
