package token

import (
	"strconv"

	"ruffle/internal/source"
)

// Token represents a single source token with its location, raw lexeme, and
// decoded payload.
type Token struct {
	Kind Kind
	Span source.Span
	// Text is the raw lexeme, sliced out of the source content without
	// copying.
	Text string
	// Int holds the decoded value when Kind is IntLit.
	Int int32
	// Float holds the decoded value when Kind is FloatLit.
	Float float32
	// Str holds the decoded payload when Kind is StringLit (the text between
	// the quotes, escapes untouched) or Ident (same as Text).
	Str string
	// Leading trivia collected immediately before the token.
	Leading []Trivia
}

// String renders the token's display form: fixed-text kinds render their
// literal, numbers render their decoded value, strings render str("<value>"),
// identifiers render ident(<value>).
func (t Token) String() string {
	if lit, ok := t.Kind.Literal(); ok {
		return lit
	}
	switch t.Kind {
	case IntLit:
		return strconv.FormatInt(int64(t.Int), 10)
	case FloatLit:
		return strconv.FormatFloat(float64(t.Float), 'f', -1, 32)
	case StringLit:
		return `str("` + t.Str + `")`
	case Ident:
		return "ident(" + t.Str + ")"
	default:
		return t.Kind.String()
	}
}

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Dot, Comma, Semicolon, Bang, Question, Colon, ColonColon,
		LParen, RParen, LBracket, RBracket, LBrace, RBrace, Arrow, FatArrow,
		Plus, Minus, Star, Slash, Percent,
		EqEq, EqEqEq, BangEq, BangEqEq, Lt, LtEq, Gt, GtEq,
		AndAnd, OrOr,
		Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwLet, KwFn, KwIf, KwElse, KwWhile, KwFor, KwReturn, KwClass,
		KwImpl, KwStruct, KwEnum, KwSelf, KwSuper, KwUse, KwMod, KwConst,
		KwStatic:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
