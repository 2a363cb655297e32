// Package fuzztests houses Go fuzz harnesses for the value pipeline
// (tokenizer -> lexer -> parser -> unit). They guard the tokenizer's
// partition contract and the parser's no-panic, no-hang behavior on
// arbitrary bytes.
//
// Seeds come from testdata/*.cssv (one value per line) and a built-in list.
package fuzztests
