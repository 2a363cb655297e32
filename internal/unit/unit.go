// Package unit splits a CSS dimension such as "12px" or "-1.5e3deg" into
// its number and unit, following the consume-a-number steps of CSS Syntax 3.
package unit

import "strconv"

// Dimension is a numeric literal and the text after it. Both are
// substrings of the parsed value and Number+Unit equals it.
type Dimension struct {
	Number string
	Unit   string
}

// Parse decomposes s. It reports false when s does not start a number;
// otherwise the split always succeeds and Unit may be empty.
//
// The fraction and the exponent are each taken at most once, in that
// order, so ".2.3rem" is (".2", ".3rem") and "1e1e1" is ("1e1", "e1").
func Parse(s string) (Dimension, bool) {
	if !startsNumber(s) {
		return Dimension{}, false
	}

	pos := 0
	if isSign(s[0]) {
		pos++
	}
	pos = skipDigits(s, pos)

	// fraction: '.' followed by a digit
	if pos+1 < len(s) && s[pos] == '.' && isDigit(s[pos+1]) {
		pos = skipDigits(s, pos+2)
	}

	// exponent: 'e' or 'E', an optional sign, then a digit
	if pos < len(s) && (s[pos] == 'e' || s[pos] == 'E') {
		switch {
		case pos+1 < len(s) && isDigit(s[pos+1]):
			pos = skipDigits(s, pos+2)
		case pos+2 < len(s) && isSign(s[pos+1]) && isDigit(s[pos+2]):
			pos = skipDigits(s, pos+3)
		}
	}

	return Dimension{Number: s[:pos], Unit: s[pos:]}, true
}

// startsNumber checks the first three bytes the way CSS "starts with a
// number" does: [+-]?digit or [+-]?'.'digit.
func startsNumber(s string) bool {
	i := 0
	if i < len(s) && isSign(s[i]) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
	}
	return i < len(s) && isDigit(s[i])
}

func skipDigits(s string, pos int) int {
	for pos < len(s) && isDigit(s[pos]) {
		pos++
	}
	return pos
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isSign(b byte) bool  { return b == '+' || b == '-' }

// Float parses the number part.
func (d Dimension) Float() (float64, error) {
	return strconv.ParseFloat(d.Number, 64)
}

// String rejoins the number and the unit.
func (d Dimension) String() string {
	return d.Number + d.Unit
}
