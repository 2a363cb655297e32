package lexer

import (
	"cssvalue/internal/token"
)

// scanSingle emits one of the single-byte tokens: dividers and parentheses.
func (tz *Tokenizer) scanSingle(kind token.Kind) token.Token {
	start := tz.cursor.Mark()
	tz.cursor.Bump()
	return tz.emit(kind, start)
}

// singleKind maps the one-byte punctuation to its token kind.
func singleKind(b byte) (token.Kind, bool) {
	switch b {
	case '/', ',', ':':
		return token.Div, true
	case '(':
		return token.OpenParen, true
	case ')':
		return token.CloseParen, true
	default:
		return token.Unknown, false
	}
}
