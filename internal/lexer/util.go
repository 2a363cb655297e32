package lexer

// ===== byte classifiers =====

// isSpaceStart: any byte in 0..=32 opens a space run.
func isSpaceStart(b byte) bool { return b <= ' ' }

// isSpaceContinue: the run only extends over 1..=32, so the 0 sentinel stops it.
func isSpaceContinue(b byte) bool { return b >= 1 && b <= ' ' }

func isQuote(b byte) bool { return b == '\'' || b == '"' }

// isWordEnd reports bytes that terminate a word run.
func isWordEnd(b byte) bool {
	switch b {
	case '\'', '"', ',', ':', '/', '*', '(', ')':
		return true
	default:
		return b <= ' '
	}
}

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

// isUnicodeRange matches ^[uU]\+[0-9a-fA-F?-]+$ with at least three bytes.
func isUnicodeRange(s string) bool {
	if len(s) < 3 {
		return false
	}
	if s[0] != 'u' && s[0] != 'U' {
		return false
	}
	if s[1] != '+' {
		return false
	}
	for i := 2; i < len(s); i++ {
		if b := s[i]; !isHex(b) && b != '?' && b != '-' {
			return false
		}
	}
	return true
}
