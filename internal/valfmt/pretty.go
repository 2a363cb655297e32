package valfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"cssvalue/internal/ast"
)

type PrettyOpts struct {
	Color bool
	// Loc, when set, adds line:col positions.
	Loc *Locator
}

type palette struct {
	kinds map[ast.Kind]*color.Color
	value *color.Color
	dim   *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		kinds: map[ast.Kind]*color.Color{
			ast.KindFunction:     color.New(color.FgYellow, color.Bold),
			ast.KindWord:         color.New(color.FgCyan),
			ast.KindString:       color.New(color.FgGreen),
			ast.KindComment:      color.New(color.FgHiBlack),
			ast.KindDiv:          color.New(color.FgMagenta),
			ast.KindUnicodeRange: color.New(color.FgBlue),
			ast.KindSpace:        color.New(color.FgHiBlack),
		},
		value: color.New(color.FgWhite),
		dim:   color.New(color.FgHiBlack),
	}
	all := []*color.Color{p.value, p.dim}
	for _, c := range p.kinds {
		all = append(all, c)
	}
	for _, c := range all {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// FormatTreePretty prints an indented outline:
//
//	function "rgba" @0
//	├─ space " " @5
//	└─ word "29" @6
func FormatTreePretty(w io.Writer, nodes []ast.Node, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	var sb strings.Builder
	for _, n := range nodes {
		writePretty(&sb, n, "", "", p, opts.Loc)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writePretty(sb *strings.Builder, n ast.Node, lead, childLead string, p palette, loc *Locator) {
	sb.WriteString(lead)
	sb.WriteString(p.kinds[n.Kind()].Sprint(n.Kind().String()))
	sb.WriteByte(' ')
	sb.WriteString(p.value.Sprint(fmt.Sprintf("%q", n.Text())))
	sb.WriteString(p.dim.Sprintf(" @%d", n.Pos()))
	if loc != nil && loc.File != nil {
		pos := loc.File.ResolveOffset(loc.Base + n.Pos())
		sb.WriteString(p.dim.Sprintf(" (%d:%d)", pos.Line, pos.Col))
	}
	sb.WriteByte('\n')

	f, ok := n.(*ast.Function)
	if !ok {
		return
	}
	for i, child := range f.Nodes {
		if i == len(f.Nodes)-1 {
			writePretty(sb, child, childLead+"└─ ", childLead+"   ", p, loc)
		} else {
			writePretty(sb, child, childLead+"├─ ", childLead+"│  ", p, loc)
		}
	}
}
