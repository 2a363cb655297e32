package testkit

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"cssvalue/internal/ast"
	"cssvalue/internal/token"
)

// CheckTokenPartition verifies the tokenizer contract on src:
// 1) tokens are contiguous, non-empty and start at 0
// 2) the last token ends at len(src)
// 3) every token's text is its source slice, or the body for comments
func CheckTokenPartition(src string, tokens []token.Token) error {
	limit, err := safecast.Conv[uint32](len(src))
	if err != nil {
		return fmt.Errorf("len value overflow: %w", err)
	}

	var off uint32
	for i, tok := range tokens {
		sp := tok.Span
		if sp.Start != off {
			return fmt.Errorf("token %d (%v) starts at %d, expected %d", i, tok.Kind, sp.Start, off)
		}
		if sp.End <= sp.Start {
			return fmt.Errorf("token %d (%v) is empty: %v", i, tok.Kind, sp)
		}
		if sp.End > limit {
			return fmt.Errorf("token %d (%v) ends beyond input: %d > %d", i, tok.Kind, sp.End, limit)
		}
		if err := checkTokenText(src, tok); err != nil {
			return fmt.Errorf("token %d: %w", i, err)
		}
		off = sp.End
	}

	if off != limit {
		return fmt.Errorf("tokens cover [0,%d), input has %d bytes", off, limit)
	}
	return nil
}

func checkTokenText(src string, tok token.Token) error {
	raw := src[tok.Span.Start:tok.Span.End]
	if tok.Kind != token.Comment {
		if tok.Text != raw {
			return fmt.Errorf("%v text %q differs from source %q", tok.Kind, tok.Text, raw)
		}
		return nil
	}
	body := strings.TrimPrefix(raw, "/*")
	if len(body) == len(raw) {
		return fmt.Errorf("comment %q does not start with /*", raw)
	}
	if closed := strings.TrimSuffix(body, "*/"); closed == tok.Text {
		return nil
	}
	if body != tok.Text {
		return fmt.Errorf("comment body %q differs from source %q", tok.Text, raw)
	}
	return nil
}

// CheckTreeOrder verifies a parsed tree against src:
// 1) node positions strictly increase in pre-order
// 2) every value sits in src at its position (comments after "/*",
//    anonymous functions at '(')
func CheckTreeOrder(nodes []ast.Node, src string) error {
	var (
		prev    uint32
		visited int
		failure error
	)
	ast.Walk(nodes, func(n ast.Node) bool {
		if failure != nil {
			return false
		}
		pos := n.Pos()
		if visited > 0 && pos <= prev {
			failure = fmt.Errorf("%v at %d does not follow previous node at %d", n.Kind(), pos, prev)
			return false
		}
		if err := checkNodeText(src, n); err != nil {
			failure = err
			return false
		}
		prev = pos
		visited++
		return true
	})
	return failure
}

func checkNodeText(src string, n ast.Node) error {
	pos := int(n.Pos())
	if pos >= len(src) {
		return fmt.Errorf("%v at %d is outside input of %d bytes", n.Kind(), pos, len(src))
	}
	want := n.Text()
	switch n.Kind() {
	case ast.KindComment:
		want = "/*" + want
	case ast.KindFunction:
		want += "("
	}
	if !strings.HasPrefix(src[pos:], want) {
		return fmt.Errorf("%v at %d: %q not found in source", n.Kind(), pos, n.Text())
	}
	return nil
}
