package parser

import (
	"strconv"

	"cssvalue/internal/ast"
	"cssvalue/internal/lexer"
	"cssvalue/internal/token"
	"cssvalue/internal/trace"
)

// Options tune a single Parse call. The zero value is ready to use.
type Options struct {
	// Tracer observes the parse; nil means trace.Nop.
	Tracer trace.Tracer
	// Parent is the span the parse span is nested under.
	Parent uint64
}

// Parser holds the state for one value.
type Parser struct {
	lx     *lexer.Lexer
	tokens int // tokens consumed, reported on the trace span
}

// Parse builds the node tree of a CSS value. It never fails: unterminated
// strings, comments and functions end at the end of input.
func Parse(input string) []ast.Node {
	p := newParser(input)
	return p.parseValue()
}

// ParseWith is Parse wrapped in a pass-scope "parse" span.
func ParseWith(input string, opts Options) []ast.Node {
	tr := opts.Tracer
	if tr == nil {
		tr = trace.Nop
	}
	span := trace.Begin(tr, trace.ScopePass, "parse", opts.Parent)

	p := newParser(input)
	nodes := p.parseValue()

	span.WithExtra("bytes", strconv.Itoa(len(input))).
		WithExtra("tokens", strconv.Itoa(p.tokens)).
		WithExtra("nodes", strconv.Itoa(ast.Count(nodes))).
		End("")
	return nodes
}

func newParser(input string) *Parser {
	return &Parser{lx: lexer.New(input)}
}

// parseValue is the top-level loop: one production per peeked token.
func (p *Parser) parseValue() []ast.Node {
	var nodes []ast.Node
	for !p.lx.Done() {
		switch p.lx.PeekKind() {
		case token.Space, token.Comment, token.String, token.Div, token.UnicodeRange:
			nodes = append(nodes, p.parseLeaf())

		case token.Word:
			nodes = append(nodes, p.parseWordOrCall())

		case token.OpenParen:
			open := p.advance()
			nodes = append(nodes, p.parseFunction("", open.Start()))

		case token.CloseParen:
			nodes = append(nodes, p.parseStrayClose())

		default:
			p.advance()
		}
	}
	return nodes
}

// parseStrayClose folds an unmatched ')' and the run of ')' and words right
// after it into one Word.
func (p *Parser) parseStrayClose() ast.Node {
	sp := p.advance().Span
	for p.at(token.CloseParen) || p.at(token.Word) {
		sp = sp.Cover(p.advance().Span)
	}
	return p.wordOver(sp)
}
