package ast_test

import (
	"testing"

	"cssvalue/internal/ast"
)

func sampleTree() []ast.Node {
	// rgba( 0, /*a*/ calc(1/2) )
	return []ast.Node{
		&ast.Function{SourceIndex: 0, Value: "rgba", Nodes: []ast.Node{
			&ast.Space{SourceIndex: 5, Value: " "},
			&ast.Word{SourceIndex: 6, Value: "0"},
			&ast.Div{SourceIndex: 7, Value: ","},
			&ast.Space{SourceIndex: 8, Value: " "},
			&ast.Comment{SourceIndex: 9, Value: "a"},
			&ast.Space{SourceIndex: 14, Value: " "},
			&ast.Function{SourceIndex: 15, Value: "calc", Nodes: []ast.Node{
				&ast.Word{SourceIndex: 20, Value: "1"},
				&ast.Word{SourceIndex: 21, Value: "/"},
				&ast.Word{SourceIndex: 22, Value: "2"},
			}},
			&ast.Space{SourceIndex: 24, Value: " "},
		}},
	}
}

func TestStringify(t *testing.T) {
	got := ast.Stringify(sampleTree())
	want := "rgba( 0, /*a*/ calc(1/2) )"
	if got != want {
		t.Fatalf("Stringify = %q, want %q", got, want)
	}
	if ast.Stringify(nil) != "" {
		t.Fatal("Stringify(nil) must be empty")
	}
}

func TestWalkPreOrder(t *testing.T) {
	var kinds []ast.Kind
	ast.Walk(sampleTree(), func(n ast.Node) bool {
		kinds = append(kinds, n.Kind())
		return true
	})
	want := []ast.Kind{
		ast.KindFunction, ast.KindSpace, ast.KindWord, ast.KindDiv, ast.KindSpace,
		ast.KindComment, ast.KindSpace, ast.KindFunction, ast.KindWord, ast.KindWord,
		ast.KindWord, ast.KindSpace,
	}
	if len(kinds) != len(want) {
		t.Fatalf("visited %d nodes, want %d", len(kinds), len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("node %d: got %v, want %v", i, kinds[i], want[i])
		}
	}
	if ast.Count(sampleTree()) != len(want) {
		t.Errorf("Count = %d", ast.Count(sampleTree()))
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	var names []string
	ast.Walk(sampleTree(), func(n ast.Node) bool {
		if f, ok := n.(*ast.Function); ok {
			names = append(names, f.Value)
			return f.Value != "rgba"
		}
		return true
	})
	if len(names) != 1 || names[0] != "rgba" {
		t.Fatalf("expected only rgba to be visited, got %v", names)
	}
}

func TestEqual(t *testing.T) {
	a, b := sampleTree(), sampleTree()
	if !ast.Equal(a, b) {
		t.Fatal("identical trees must be equal")
	}
	inner := b[0].(*ast.Function).Nodes[6].(*ast.Function)
	inner.Nodes[1] = &ast.Div{SourceIndex: 21, Value: "/"}
	if ast.Equal(a, b) {
		t.Fatal("kind change must break equality")
	}
	if ast.Equal(a, a[:0]) {
		t.Fatal("length change must break equality")
	}
}

func TestCapabilityMarkersDefaultToClosed(t *testing.T) {
	nodes := []ast.Node{&ast.Function{}, &ast.String{}, &ast.Comment{}}
	for _, n := range nodes {
		c, ok := n.(ast.Closable)
		if !ok || c.Unclosed() {
			t.Errorf("%v: expected closed Closable", n.Kind())
		}
		a, ok := n.(ast.AdjacentAware)
		if !ok || a.Before() != "" || a.After() != "" {
			t.Errorf("%v: expected empty AdjacentAware", n.Kind())
		}
	}
	if _, ok := ast.Node(&ast.Word{}).(ast.Closable); ok {
		t.Error("Word must not be Closable")
	}
}

func TestKindNames(t *testing.T) {
	for k := ast.KindWord; k <= ast.KindFunction; k++ {
		back, ok := ast.ParseKind(k.String())
		if !ok || back != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), back, ok)
		}
	}
	if _, ok := ast.ParseKind("paren"); ok {
		t.Error("unknown kind name must not parse")
	}
	if ast.NewLeaf(ast.KindFunction, 0, "x") != nil {
		t.Error("NewLeaf must not build functions")
	}
	if n := ast.NewLeaf(ast.KindDiv, 3, ","); n.Kind() != ast.KindDiv || n.Pos() != 3 || n.Text() != "," {
		t.Errorf("NewLeaf(div) = %#v", n)
	}
}
