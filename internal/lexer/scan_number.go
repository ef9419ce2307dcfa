package lexer

import (
	"errors"
	"strconv"

	"ruffle/internal/diag"
	"ruffle/internal/token"
)

// scanNumber scans [0-9]+ or [0-9]+\.[0-9]+ (decimal point mandatory for
// floats, no exponent, no bare leading/trailing dot) and decodes the value.
// A '.' not followed by a digit is left for the operator scanner, so "1."
// lexes as Integer, Dot.
func (lx *Lexer) scanNumber() (token.Token, *Error) {
	start := lx.cursor.Mark()

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	isFloat := false
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		isFloat = true
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.file.Slice(sp)

	if isFloat {
		// An out-of-range literal still decodes: ParseFloat reports
		// ErrRange but returns the clamped value (+Inf on overflow, 0 on
		// underflow), which is the 32-bit float semantics for this lexeme.
		// Only a syntax failure is an error.
		value, err := strconv.ParseFloat(text, 32)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			lx.errLex(diag.LexBadFloat, sp, "invalid float literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: text},
				&Error{Kind: ErrInvalidFloat, Span: sp}
		}
		return token.Token{Kind: token.FloatLit, Span: sp, Text: text, Float: float32(value)}, nil
	}

	value, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		reason := "other"
		code := diag.LexBadInt
		if errors.Is(err, strconv.ErrRange) {
			reason = "overflow"
			code = diag.LexIntOverflow
		}
		lx.errLex(code, sp, "invalid integer literal: "+reason)
		return token.Token{Kind: token.Invalid, Span: sp, Text: text},
			&Error{Kind: ErrInvalidInteger, Span: sp, Reason: reason}
	}
	return token.Token{Kind: token.IntLit, Span: sp, Text: text, Int: int32(value)}, nil
}
