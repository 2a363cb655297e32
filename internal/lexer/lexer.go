package lexer

import (
	"cssvalue/internal/token"
)

// Lexer exposes a Tokenizer as a stream with one token of lookahead.
type Lexer struct {
	tz   *Tokenizer
	look *token.Token // one-token lookahead buffer
}

// New creates a lexer over src.
func New(src string) *Lexer {
	return &Lexer{
		tz:   NewTokenizer(src),
		look: nil,
	}
}

// Next returns the next token. Once the value is exhausted it returns
// false on every call.
func (lx *Lexer) Next() (token.Token, bool) {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok, true
	}
	if lx.tz.EOF() {
		return token.Token{}, false
	}
	return lx.tz.Next(), true
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() (token.Token, bool) {
	if lx.look != nil {
		return *lx.look, true
	}
	t, ok := lx.Next()
	if !ok {
		return t, false
	}
	lx.look = &t
	return t, true
}

// PeekKind returns the kind of the next token, or Unknown when exhausted.
func (lx *Lexer) PeekKind() token.Kind {
	t, ok := lx.Peek()
	if !ok {
		return token.Unknown
	}
	return t.Kind
}

// Done reports whether no tokens remain.
func (lx *Lexer) Done() bool {
	return lx.look == nil && lx.tz.EOF()
}

// Source returns the value being lexed.
func (lx *Lexer) Source() string {
	return lx.tz.Source()
}
