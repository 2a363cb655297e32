package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"cssvalue/internal/source"
)

// Cursor is the only mutable position in the tokenizer: a byte offset into
// an immutable value.
type Cursor struct {
	Src string
	Off uint32
	// Limit is the exclusive upper bound for Off, len(Src).
	Limit uint32
}

// NewCursor creates a new cursor at the start of src.
func NewCursor(src string) Cursor {
	limit, err := safecast.Conv[uint32](len(src))
	if err != nil {
		panic(fmt.Errorf("len value overflow: %w", err))
	}
	return Cursor{
		Src:   src,
		Off:   0,
		Limit: limit,
	}
}

// EOF reports whether the cursor reached the end of the value.
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek returns the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	return c.At(c.Off)
}

// PeekAt returns the byte n positions ahead of the cursor, or 0 past the end.
func (c *Cursor) PeekAt(n uint32) byte {
	return c.At(c.Off + n)
}

// At returns the byte at absolute offset off, or 0 past the end.
// The 0 sentinel never matches any run the tokenizer extends.
func (c *Cursor) At(off uint32) byte {
	if off >= c.Limit {
		return 0
	}
	return c.Src[off]
}

// Bump moves the cursor one byte forward and returns the byte it passed.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.Src[c.Off]
	c.Off++
	return b
}

// Advance moves the cursor n bytes forward, stopping at Limit.
func (c *Cursor) Advance(n uint32) {
	if n > c.Limit-c.Off {
		c.Off = c.Limit
		return
	}
	c.Off += n
}

// Seek moves the cursor to off, clamped to Limit.
func (c *Cursor) Seek(off uint32) {
	c.Off = min(off, c.Limit)
}

// Mark is a saved cursor position used to build spans cheaply.
type Mark uint32

// Mark saves the current cursor position.
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom returns the span from m up to the cursor.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		Start: uint32(m),
		End:   c.Off,
	}
}

// TextFrom returns the value text from m up to the cursor.
func (c *Cursor) TextFrom(m Mark) string {
	return c.Src[m:c.Off]
}

// Eat consumes the next byte if it matches b.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.Src[c.Off] == b {
		c.Off++
		return true
	}
	return false
}
