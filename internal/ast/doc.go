// Package ast defines the node tree of a parsed CSS value.
//
// Nodes keep the byte offset of their first byte and a value that is a
// substring of the input, so a tree shares memory with the string it was
// parsed from and is never modified after the parser returns it.
package ast
