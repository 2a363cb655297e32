package token

// Kind represents the category of a value token.
type Kind uint8

const (
	// Unknown is never produced for real input; it marks a read past the end.
	Unknown Kind = iota
	// OpenParen is a single "(".
	OpenParen
	// CloseParen is a single ")".
	CloseParen
	// Space is a run of bytes in 0..=32.
	Space
	// Word is any other run, including escapes like "\(".
	Word
	// String is a quoted run, quotes included.
	String
	// Div is one of "/", "," or ":".
	Div
	// Comment is /* ... */; Text holds only the body.
	Comment
	// UnicodeRange is a word matching U+[0-9a-fA-F?-]+.
	UnicodeRange
)

// String returns the display name of the kind.
func (k Kind) String() string {
	switch k {
	case OpenParen:
		return "("
	case CloseParen:
		return ")"
	case Space:
		return "space"
	case Word:
		return "word"
	case String:
		return "string"
	case Div:
		return "div"
	case Comment:
		return "comment"
	case UnicodeRange:
		return "unicode-range"
	default:
		return "unknown"
	}
}
