// Package cssvalue lexes and parses a single CSS declaration value, such as
// "10px solid red" or "rgba(0,0,0,.5)", into a tree of position-annotated
// nodes.
//
// Parsing never fails. Unterminated strings, comments and functions end at
// the end of the input, and stray closing parentheses become words.
//
//	nodes := cssvalue.Parse("url( /a.png ) no-repeat")
//	cssvalue.Walk(nodes, func(n ast.Node) bool {
//		fmt.Println(n.Kind(), n.Pos(), n.Text())
//		return true
//	})
//
// Unit is independent of the tree: it splits "12px" into "12" and "px".
package cssvalue
