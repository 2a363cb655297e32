package parser

import (
	"cssvalue/internal/ast"
	"cssvalue/internal/token"
)

const (
	nameURL  = "url"
	nameCalc = "calc"
)

// parseWordOrCall turns a word into a call when '(' follows it directly.
func (p *Parser) parseWordOrCall() ast.Node {
	word := p.advance()
	if p.at(token.OpenParen) {
		p.advance()
		return p.parseFunction(word.Text, word.Start())
	}
	return &ast.Word{SourceIndex: word.Start(), Value: word.Text}
}

// parseFunction reads a call body after its '('. The closing ')' ends the
// body and is not kept; end of input ends it too.
func (p *Parser) parseFunction(name string, index uint32) *ast.Function {
	fn := &ast.Function{SourceIndex: index, Value: name}
	for !p.lx.Done() {
		tok, _ := p.lx.Peek()
		switch tok.Kind {
		case token.Space, token.Comment, token.String, token.UnicodeRange:
			fn.Nodes = append(fn.Nodes, p.parseLeaf())

		case token.Div:
			fn.Nodes = append(fn.Nodes, p.parseDivIn(name, tok))

		case token.Word:
			if name == nameURL {
				fn.Nodes = append(fn.Nodes, p.parseURLWord())
			} else {
				fn.Nodes = append(fn.Nodes, p.parseWordOrCall())
			}

		case token.OpenParen:
			open := p.advance()
			fn.Nodes = append(fn.Nodes, p.parseFunction("", open.Start()))

		case token.CloseParen:
			p.advance()
			return fn

		default:
			p.advance()
		}
	}
	return fn
}

// parseDivIn handles a divider inside a call named name. A '/' starts a url
// path in url(), is an operator Word in calc() and a Div elsewhere. ',' and
// ':' are always Div.
func (p *Parser) parseDivIn(name string, tok token.Token) ast.Node {
	switch {
	case tok.IsDiv("/") && name == nameURL:
		return p.parseURLWord()
	case tok.IsDiv("/") && name != nameCalc:
		return p.parseLeaf()
	case tok.IsDiv(",") || tok.IsDiv(":"):
		return p.parseLeaf()
	default:
		t := p.advance()
		return &ast.Word{SourceIndex: t.Start(), Value: t.Text}
	}
}

// parseURLWord glues an unquoted url together: the current token plus every
// following word, '/' and ':' become one Word over the source slice.
func (p *Parser) parseURLWord() ast.Node {
	sp := p.advance().Span
	for !p.lx.Done() {
		tok, _ := p.lx.Peek()
		if !tok.Is(token.Word, "") && !tok.IsDiv("/") && !tok.IsDiv(":") {
			break
		}
		sp = sp.Cover(p.advance().Span)
	}
	return p.wordOver(sp)
}
