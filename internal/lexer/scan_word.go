package lexer

import (
	"cssvalue/internal/token"
)

// scanWord consumes a maximal run of bytes that do not end a word. A
// backslash always takes the following byte with it, whatever that byte is.
// An empty run is forced to one byte so the tokenizer always progresses.
func (tz *Tokenizer) scanWord() token.Token {
	start := tz.cursor.Mark()
	for !tz.cursor.EOF() {
		if tz.cursor.Eat('\\') {
			tz.cursor.Bump()
			continue
		}
		if isWordEnd(tz.cursor.Peek()) {
			break
		}
		tz.cursor.Bump()
	}
	if tz.cursor.Off == uint32(start) {
		tz.cursor.Bump()
	}

	kind := token.Word
	if isUnicodeRange(tz.cursor.TextFrom(start)) {
		kind = token.UnicodeRange
	}
	return tz.emit(kind, start)
}
