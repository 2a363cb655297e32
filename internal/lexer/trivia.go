package lexer

import (
	"strings"

	"cssvalue/internal/token"
)

// scanSpace consumes the current byte (0..=32) and every following byte in 1..=32.
func (tz *Tokenizer) scanSpace() token.Token {
	start := tz.cursor.Mark()
	tz.cursor.Bump()
	for isSpaceContinue(tz.cursor.Peek()) {
		tz.cursor.Bump()
	}
	return tz.emit(token.Space, start)
}

// scanComment consumes "/* ... */". Text is the body only.
// An unterminated comment runs to the end of the value.
func (tz *Tokenizer) scanComment() token.Token {
	start := tz.cursor.Mark()
	bodyStart := tz.cursor.Off + 2
	body := tz.cursor.Src[bodyStart:]

	end := strings.Index(body, "*/")
	if end < 0 {
		tz.cursor.Seek(tz.cursor.Limit)
		return token.Token{Kind: token.Comment, Span: tz.cursor.SpanFrom(start), Text: body}
	}

	// end < len(body) <= Limit, so the conversion is safe
	bodyEnd := bodyStart + uint32(end)
	tz.cursor.Seek(bodyEnd + 2)
	return token.Token{
		Kind: token.Comment,
		Span: tz.cursor.SpanFrom(start),
		Text: tz.cursor.Src[bodyStart:bodyEnd],
	}
}
