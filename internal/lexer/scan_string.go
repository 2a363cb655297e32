package lexer

import (
	"strings"

	"cssvalue/internal/token"
)

// scanString consumes a quoted string, quotes included. A candidate closing
// quote preceded by an odd number of backslashes is escaped. Without a
// closing quote the string runs to the end of the value.
func (tz *Tokenizer) scanString() token.Token {
	start := tz.cursor.Mark()
	src := tz.cursor.Src
	quote := src[start]

	from := int(start) + 1
	for {
		idx := strings.IndexByte(src[from:], quote)
		if idx < 0 {
			tz.cursor.Seek(tz.cursor.Limit)
			break
		}
		pos := from + idx
		if !escapedAt(src, pos) {
			tz.cursor.Seek(uint32(pos) + 1)
			break
		}
		from = pos + 1
	}
	return tz.emit(token.String, start)
}

// escapedAt counts the backslashes right before pos. The opening quote
// bounds the walk, so it never runs past the string start.
func escapedAt(src string, pos int) bool {
	escaped := false
	for i := pos - 1; i >= 0 && src[i] == '\\'; i-- {
		escaped = !escaped
	}
	return escaped
}
