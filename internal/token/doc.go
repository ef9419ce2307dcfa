// Package token defines lexical token kinds for the Ruffle compiler.
// Invariants:
//   - Token.Text is a slice of the original source (no copies); the source
//     File must outlive the token.
//   - Token.Span matches Text exactly (Start..End).
//   - Literal kinds carry a decoded payload distinct from Text: IntLit/FloatLit
//     hold the parsed value, StringLit holds the text between the quotes with
//     backslash escapes preserved literally.
//   - Comments and whitespace never appear in the token stream; they are
//     attached to tokens as leading Trivia.
package token
