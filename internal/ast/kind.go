package ast

// Kind identifies the variant of a Node.
type Kind uint8

const (
	KindWord Kind = iota
	KindSpace
	KindComment
	KindUnicodeRange
	KindDiv
	KindString
	KindFunction
)

var kindNames = [...]string{
	KindWord:         "word",
	KindSpace:        "space",
	KindComment:      "comment",
	KindUnicodeRange: "unicode-range",
	KindDiv:          "div",
	KindString:       "string",
	KindFunction:     "function",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// ParseKind maps a kind name back to its Kind.
func ParseKind(s string) (Kind, bool) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), true
		}
	}
	return 0, false
}
