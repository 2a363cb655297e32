package lexer

import (
	"cssvalue/internal/token"
)

// Tokenizer splits one CSS value into contiguous tokens. Every call to Next
// advances the cursor by at least one byte until EOF.
type Tokenizer struct {
	cursor Cursor
}

// NewTokenizer creates a tokenizer positioned at the start of src.
func NewTokenizer(src string) *Tokenizer {
	return &Tokenizer{cursor: NewCursor(src)}
}

// EOF reports whether the whole value has been consumed.
func (tz *Tokenizer) EOF() bool {
	return tz.cursor.EOF()
}

// Pos returns the current byte offset.
func (tz *Tokenizer) Pos() uint32 {
	return tz.cursor.Off
}

// Source returns the value being tokenized.
func (tz *Tokenizer) Source() string {
	return tz.cursor.Src
}

// Next returns the token at the cursor and moves past it.
// At EOF it returns a zero-width Unknown token and does not move.
func (tz *Tokenizer) Next() token.Token {
	if tz.cursor.EOF() {
		return token.Token{Kind: token.Unknown, Span: tz.cursor.SpanFrom(tz.cursor.Mark())}
	}

	ch := tz.cursor.Peek()
	switch {
	case isSpaceStart(ch):
		return tz.scanSpace()

	case isQuote(ch):
		return tz.scanString()

	case ch == '/' && tz.cursor.PeekAt(1) == '*':
		return tz.scanComment()
	}

	if kind, ok := singleKind(ch); ok {
		return tz.scanSingle(kind)
	}
	return tz.scanWord()
}

func (tz *Tokenizer) emit(kind token.Kind, start Mark) token.Token {
	return token.Token{
		Kind: kind,
		Span: tz.cursor.SpanFrom(start),
		Text: tz.cursor.TextFrom(start),
	}
}

// Tokenize returns every token of src in order.
func Tokenize(src string) []token.Token {
	tz := NewTokenizer(src)
	var tokens []token.Token
	for !tz.EOF() {
		tokens = append(tokens, tz.Next())
	}
	return tokens
}
