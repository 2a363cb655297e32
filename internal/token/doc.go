// Package token defines lexical token kinds for CSS declaration values.
// Invariants:
//   - Token.Text is a substring of the original value (no copies).
//   - Token.Span matches Text exactly, except for Comment, whose Text drops
//     the "/*" and "*/" delimiters while Span still covers them.
//   - Consecutive tokens of one value are contiguous: each Span.Start equals
//     the previous Span.End, the first starts at 0 and the last ends at len.
//   - Dividers are exactly "/", "," and ":"; parentheses have their own kinds.
package token
