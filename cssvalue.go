package cssvalue

import (
	"cssvalue/internal/ast"
	"cssvalue/internal/lexer"
	"cssvalue/internal/parser"
	"cssvalue/internal/token"
	"cssvalue/internal/unit"
)

type (
	// Token is one lexical unit: kind, text and byte span.
	Token = token.Token
	// Node is one node of a parsed value.
	Node = ast.Node
	// Dimension is a number and its unit.
	Dimension = unit.Dimension
)

// Tokenize returns the tokens of value. They partition the input: each
// starts where the previous one ended and the last ends at len(value).
func Tokenize(value string) []Token {
	return lexer.Tokenize(value)
}

// Parse returns the node tree of value.
func Parse(value string) []Node {
	return parser.Parse(value)
}

// Unit splits a dimension such as "-1.5em" into number and unit. It reports
// false when value does not start with a number.
func Unit(value string) (Dimension, bool) {
	return unit.Parse(value)
}

// Stringify rebuilds value text from nodes.
func Stringify(nodes []Node) string {
	return ast.Stringify(nodes)
}

// Walk visits nodes in pre-order; returning false skips a function's children.
func Walk(nodes []Node, fn func(Node) bool) {
	ast.Walk(nodes, fn)
}
