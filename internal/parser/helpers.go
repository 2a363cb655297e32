package parser

import (
	"cssvalue/internal/ast"
	"cssvalue/internal/source"
	"cssvalue/internal/token"
)

func (p *Parser) at(k token.Kind) bool {
	return p.lx.PeekKind() == k
}

// advance consumes the next token. Callers peek first, so the stream is
// never exhausted here.
func (p *Parser) advance() token.Token {
	tok, _ := p.lx.Next()
	p.tokens++
	return tok
}

// leafKinds maps token kinds that become nodes verbatim.
var leafKinds = map[token.Kind]ast.Kind{
	token.Space:        ast.KindSpace,
	token.Comment:      ast.KindComment,
	token.String:       ast.KindString,
	token.Div:          ast.KindDiv,
	token.UnicodeRange: ast.KindUnicodeRange,
	token.Word:         ast.KindWord,
}

// parseLeaf consumes one token and returns its leaf node.
func (p *Parser) parseLeaf() ast.Node {
	tok := p.advance()
	return ast.NewLeaf(leafKinds[tok.Kind], tok.Start(), tok.Text)
}

// wordOver returns a Word holding the source text under sp.
func (p *Parser) wordOver(sp source.Span) *ast.Word {
	return &ast.Word{SourceIndex: sp.Start, Value: p.lx.Source()[sp.Start:sp.End]}
}
