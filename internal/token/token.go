package token

import (
	"cssvalue/internal/source"
)

// Token is a classified slice of a value: (kind, content, start, end).
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// Start is the byte offset of the first byte of the token.
func (t Token) Start() uint32 { return t.Span.Start }

// End is the exclusive byte offset after the token.
func (t Token) End() uint32 { return t.Span.End }

// Is reports whether the token has kind k and, when text is non-empty, that text.
func (t Token) Is(k Kind, text string) bool {
	return t.Kind == k && (text == "" || t.Text == text)
}

// IsDiv reports whether the token is the divider ch.
func (t Token) IsDiv(ch string) bool {
	return t.Is(Div, ch)
}
