package ast

import "strings"

// Walk visits nodes in pre-order. When fn returns false for a Function its
// children are skipped; the walk continues with the next sibling.
func Walk(nodes []Node, fn func(Node) bool) {
	for _, n := range nodes {
		if !fn(n) {
			continue
		}
		if f, ok := n.(*Function); ok {
			Walk(f.Nodes, fn)
		}
	}
}

// Count returns the number of nodes in the tree, functions included.
func Count(nodes []Node) int {
	total := 0
	Walk(nodes, func(Node) bool {
		total++
		return true
	})
	return total
}

// Stringify rebuilds value text from nodes. Comments get their delimiters
// back and functions their parentheses. Strings keep their raw source text,
// so Stringify(parse(s)) == s unless s has an unterminated comment or function.
func Stringify(nodes []Node) string {
	var sb strings.Builder
	writeNodes(&sb, nodes)
	return sb.String()
}

func writeNodes(sb *strings.Builder, nodes []Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *Comment:
			sb.WriteString("/*")
			sb.WriteString(n.Value)
			sb.WriteString("*/")
		case *Function:
			sb.WriteString(n.Value)
			sb.WriteByte('(')
			writeNodes(sb, n.Nodes)
			sb.WriteByte(')')
		default:
			sb.WriteString(n.Text())
		}
	}
}

// Equal reports whether two trees have the same shape, kinds, positions
// and values.
func Equal(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalNode(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalNode(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() || a.Pos() != b.Pos() || a.Text() != b.Text() {
		return false
	}
	fa, ok := a.(*Function)
	if !ok {
		return true
	}
	return Equal(fa.Nodes, b.(*Function).Nodes)
}
