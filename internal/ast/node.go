package ast

// Node is one syntactic unit of a parsed value. The set of implementations
// is closed: *Word, *Space, *Comment, *UnicodeRange, *Div, *String, *Function.
type Node interface {
	Kind() Kind
	// Pos is the byte offset of the node's first byte in the input.
	Pos() uint32
	// Text is the node's value: the source slice, comment body or call name.
	Text() string
	node()
}

// Closable is implemented by nodes that have a closing delimiter.
type Closable interface {
	Node
	// Unclosed reports whether the value ended before the node was closed.
	Unclosed() bool
}

// AdjacentAware is implemented by nodes that can carry the text right
// inside their delimiters.
type AdjacentAware interface {
	Node
	Before() string
	After() string
}

type Word struct {
	SourceIndex uint32
	Value       string
}

type Space struct {
	SourceIndex uint32
	Value       string
}

// Comment holds the comment body without the /* */ delimiters.
type Comment struct {
	SourceIndex uint32
	Value       string

	edges
}

type UnicodeRange struct {
	SourceIndex uint32
	Value       string
}

// Div is a single-byte divider: '/', ',' or ':'.
type Div struct {
	SourceIndex uint32
	Value       string
}

// String holds the quoted text including the quotes that were present.
type String struct {
	SourceIndex uint32
	Value       string

	edges
}

// Function is a call such as rgba(...) or an anonymous group (...). Value
// is the call name, empty for a group; SourceIndex points at the name, or at
// '(' for a group. The parentheses themselves are not children.
type Function struct {
	SourceIndex uint32
	Value       string
	Nodes       []Node

	edges
}

// edges backs Closable and AdjacentAware. The parser leaves it zero:
// every node reads as closed with no adjacent text.
type edges struct {
	unclosed bool
	before   string
	after    string
}

func (e edges) Unclosed() bool { return e.unclosed }
func (e edges) Before() string { return e.before }
func (e edges) After() string  { return e.after }

func (*Word) Kind() Kind         { return KindWord }
func (*Space) Kind() Kind        { return KindSpace }
func (*Comment) Kind() Kind      { return KindComment }
func (*UnicodeRange) Kind() Kind { return KindUnicodeRange }
func (*Div) Kind() Kind          { return KindDiv }
func (*String) Kind() Kind       { return KindString }
func (*Function) Kind() Kind     { return KindFunction }

func (n *Word) Pos() uint32         { return n.SourceIndex }
func (n *Space) Pos() uint32        { return n.SourceIndex }
func (n *Comment) Pos() uint32      { return n.SourceIndex }
func (n *UnicodeRange) Pos() uint32 { return n.SourceIndex }
func (n *Div) Pos() uint32          { return n.SourceIndex }
func (n *String) Pos() uint32       { return n.SourceIndex }
func (n *Function) Pos() uint32     { return n.SourceIndex }

func (n *Word) Text() string         { return n.Value }
func (n *Space) Text() string        { return n.Value }
func (n *Comment) Text() string      { return n.Value }
func (n *UnicodeRange) Text() string { return n.Value }
func (n *Div) Text() string          { return n.Value }
func (n *String) Text() string       { return n.Value }
func (n *Function) Text() string     { return n.Value }

func (*Word) node()         {}
func (*Space) node()        {}
func (*Comment) node()      {}
func (*UnicodeRange) node() {}
func (*Div) node()          {}
func (*String) node()       {}
func (*Function) node()     {}

var (
	_ Closable      = (*Function)(nil)
	_ Closable      = (*String)(nil)
	_ Closable      = (*Comment)(nil)
	_ AdjacentAware = (*Function)(nil)
	_ AdjacentAware = (*String)(nil)
	_ AdjacentAware = (*Comment)(nil)
)

// NewLeaf builds the leaf node of kind k. It returns nil for KindFunction
// and unknown kinds.
func NewLeaf(k Kind, pos uint32, value string) Node {
	switch k {
	case KindWord:
		return &Word{SourceIndex: pos, Value: value}
	case KindSpace:
		return &Space{SourceIndex: pos, Value: value}
	case KindComment:
		return &Comment{SourceIndex: pos, Value: value}
	case KindUnicodeRange:
		return &UnicodeRange{SourceIndex: pos, Value: value}
	case KindDiv:
		return &Div{SourceIndex: pos, Value: value}
	case KindString:
		return &String{SourceIndex: pos, Value: value}
	default:
		return nil
	}
}
