package lexer

import (
	"ruffle/internal/diag"
	"ruffle/internal/token"
)

// scanString scans a quoted run where a backslash escapes whatever byte
// follows it, including a quote or newline. The decoded payload strips
// exactly the two quote bytes; escape sequences are kept literally (the
// backslash stays in the payload, so `\"` decodes to `\"`, not `"`).
//
// When the closing quote is missing the opening quote alone is the
// malformed lexeme: a single-byte error is produced and scanning resumes at
// the byte after it, exactly as for any other unmatched byte.
func (lx *Lexer) scanString() (token.Token, *Error) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b == '"' {
			sp := lx.cursor.SpanFrom(start)
			text := lx.file.Slice(sp)
			return token.Token{
				Kind: token.StringLit,
				Span: sp,
				Text: text,
				Str:  text[1 : len(text)-1],
			}, nil
		}
		if b == '\\' && !lx.cursor.EOF() {
			lx.cursor.Bump() // the escaped byte, whatever it is
		}
	}

	// No closing quote before EOF: rewind to just past the opening quote.
	lx.cursor.Reset(start)
	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	lx.errLexNote(diag.LexUnexpectedChar, sp, "unexpected character",
		diag.Note{Span: sp, Msg: "string literal opened here is never closed"})
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.file.Slice(sp)},
		&Error{Kind: ErrUnexpectedChar, Span: sp}
}
