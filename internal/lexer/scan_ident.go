package lexer

import (
	"ruffle/internal/token"
)

// scanIdentOrKeyword scans [a-zA-Z_][a-zA-Z0-9_]* and classifies the lexeme
// through LookupKeyword afterwards, so an exact keyword literal wins over
// the identifier pattern while any longer lexeme ("selfish") stays an
// identifier. The payload of an identifier is the raw slice.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.file.Slice(sp)

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}

	return token.Token{Kind: token.Ident, Span: sp, Text: text, Str: text}
}
