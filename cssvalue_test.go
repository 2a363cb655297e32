package cssvalue_test

import (
	"testing"

	"cssvalue"
	"cssvalue/internal/ast"
	"cssvalue/internal/testkit"
	"cssvalue/internal/token"
)

func TestScenarios(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if nodes := cssvalue.Parse(""); len(nodes) != 0 {
			t.Fatalf("expected no nodes, got %d", len(nodes))
		}
	})

	t.Run("url", func(t *testing.T) {
		want := []ast.Node{&ast.Function{SourceIndex: 0, Value: "url", Nodes: []ast.Node{
			&ast.Space{SourceIndex: 4, Value: " "},
			&ast.Word{SourceIndex: 5, Value: "/gfx/img/bg.jpg"},
			&ast.Space{SourceIndex: 20, Value: " "},
		}}}
		if !ast.Equal(cssvalue.Parse("url( /gfx/img/bg.jpg )"), want) {
			t.Fatal("url tree mismatch")
		}
	})

	t.Run("rgba", func(t *testing.T) {
		nodes := cssvalue.Parse("rgba( 29, 439 , 29 )")
		if len(nodes) != 1 {
			t.Fatalf("expected one function, got %d nodes", len(nodes))
		}
		fn := nodes[0].(*ast.Function)
		var kinds []ast.Kind
		for _, n := range fn.Nodes {
			kinds = append(kinds, n.Kind())
		}
		want := []ast.Kind{
			ast.KindSpace, ast.KindWord, ast.KindDiv, ast.KindSpace, ast.KindWord,
			ast.KindSpace, ast.KindDiv, ast.KindSpace, ast.KindWord, ast.KindSpace,
		}
		if fn.Value != "rgba" || len(kinds) != len(want) {
			t.Fatalf("got %s with %v", fn.Value, kinds)
		}
		for i := range want {
			if kinds[i] != want[i] {
				t.Errorf("child %d: %v, want %v", i, kinds[i], want[i])
			}
		}
	})

	t.Run("calc slash", func(t *testing.T) {
		want := []ast.Node{&ast.Function{SourceIndex: 0, Value: "calc", Nodes: []ast.Node{
			&ast.Word{SourceIndex: 5, Value: "1"},
			&ast.Word{SourceIndex: 6, Value: "/"},
			&ast.Word{SourceIndex: 7, Value: "2"},
		}}}
		if !ast.Equal(cssvalue.Parse("calc(1/2)"), want) {
			t.Fatal("calc tree mismatch")
		}
	})

	t.Run("unit", func(t *testing.T) {
		if d, ok := cssvalue.Unit(".23rem"); !ok || d.Number != ".23" || d.Unit != "rem" {
			t.Errorf("Unit(.23rem) = %+v, %v", d, ok)
		}
		if d, ok := cssvalue.Unit("1.1e--++1e"); !ok || d.Number != "1.1" || d.Unit != "e--++1e" {
			t.Errorf("Unit(1.1e--++1e) = %+v, %v", d, ok)
		}
		for _, s := range []string{"+-2.", ""} {
			if _, ok := cssvalue.Unit(s); ok {
				t.Errorf("Unit(%q) must be rejected", s)
			}
		}
	})

	t.Run("unicode range", func(t *testing.T) {
		want := []ast.Node{
			&ast.UnicodeRange{SourceIndex: 0, Value: "U+0025-00FF"},
			&ast.Div{SourceIndex: 11, Value: ","},
			&ast.Space{SourceIndex: 12, Value: " "},
			&ast.UnicodeRange{SourceIndex: 13, Value: "U+4??"},
		}
		if !ast.Equal(cssvalue.Parse("U+0025-00FF, U+4??"), want) {
			t.Fatal("unicode-range tree mismatch")
		}
	})
}

func TestTokenizeContiguity(t *testing.T) {
	for _, in := range []string{
		"10px solid red",
		"rgba(0,0,0,.5)",
		"calc(1px + 2px)",
		"url(/a.png)",
		`"unterminated \"`,
		"/* unterminated",
	} {
		toks := cssvalue.Tokenize(in)
		if err := testkit.CheckTokenPartition(in, toks); err != nil {
			t.Errorf("%q: %v", in, err)
		}
	}
	if toks := cssvalue.Tokenize("a"); toks[0].Kind != token.Word {
		t.Errorf("unexpected kind %v", toks[0].Kind)
	}
}

func TestStringifyWalk(t *testing.T) {
	in := "fn1(fn2(255), fn3(.2)), /*x*/ 'q'"
	nodes := cssvalue.Parse(in)
	if got := cssvalue.Stringify(nodes); got != in {
		t.Fatalf("Stringify = %q", got)
	}
	var names []string
	cssvalue.Walk(nodes, func(n cssvalue.Node) bool {
		if n.Kind() == ast.KindFunction {
			names = append(names, n.Text())
		}
		return true
	})
	if len(names) != 3 || names[0] != "fn1" || names[1] != "fn2" || names[2] != "fn3" {
		t.Fatalf("functions visited: %v", names)
	}
}
