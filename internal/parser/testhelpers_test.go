package parser_test

import (
	"fmt"
	"strings"
	"testing"

	"cssvalue/internal/ast"
	"cssvalue/internal/parser"
)

func word(i uint32, v string) ast.Node  { return &ast.Word{SourceIndex: i, Value: v} }
func space(i uint32, v string) ast.Node { return &ast.Space{SourceIndex: i, Value: v} }
func div(i uint32, v string) ast.Node   { return &ast.Div{SourceIndex: i, Value: v} }
func str(i uint32, v string) ast.Node   { return &ast.String{SourceIndex: i, Value: v} }
func comment(i uint32, v string) ast.Node {
	return &ast.Comment{SourceIndex: i, Value: v}
}
func urange(i uint32, v string) ast.Node {
	return &ast.UnicodeRange{SourceIndex: i, Value: v}
}
func fn(i uint32, name string, nodes ...ast.Node) ast.Node {
	return &ast.Function{SourceIndex: i, Value: name, Nodes: nodes}
}

// dump renders nodes as kind@pos(value) with nested [children].
func dump(nodes []ast.Node) string {
	var sb strings.Builder
	dumpTo(&sb, nodes)
	return sb.String()
}

func dumpTo(sb *strings.Builder, nodes []ast.Node) {
	sb.WriteByte('[')
	for i, n := range nodes {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(sb, "%s@%d(%q)", n.Kind(), n.Pos(), n.Text())
		if f, ok := n.(*ast.Function); ok {
			dumpTo(sb, f.Nodes)
		}
	}
	sb.WriteByte(']')
}

func expectParse(t *testing.T, input string, want ...ast.Node) {
	t.Helper()
	got := parser.Parse(input)
	if !ast.Equal(got, want) {
		t.Fatalf("Parse(%q)\n got: %s\nwant: %s", input, dump(got), dump(want))
	}
}
