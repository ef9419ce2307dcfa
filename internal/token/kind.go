package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwImpl represents the 'impl' keyword.
	KwImpl // impl
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwSelf represents the 'self' keyword.
	KwSelf // self
	// KwSuper represents the 'super' keyword.
	KwSuper // super
	// KwUse represents the 'use' keyword.
	KwUse // use
	// KwMod represents the 'mod' keyword.
	KwMod // mod
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwStatic represents the 'static' keyword.
	KwStatic // static

	// IntLit represents the integer literal token.
	IntLit
	// FloatLit represents the float literal token.
	FloatLit
	// StringLit represents the string literal token.
	StringLit

	// Dot represents the dot punctuation token.
	Dot // .
	// Comma represents the comma punctuation token.
	Comma // ,
	// Semicolon represents the semicolon punctuation token.
	Semicolon // ;
	// Bang represents the bang operator token.
	Bang // !
	// Question represents the question operator token.
	Question // ?
	// Colon represents the colon punctuation token.
	Colon // :
	// ColonColon represents the colon colon punctuation token.
	ColonColon // ::
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// Arrow represents the arrow token.
	Arrow // ->
	// FatArrow represents the fat arrow token.
	FatArrow // =>

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %

	// EqEq represents the equality operator token.
	EqEq // ==
	// EqEqEq represents the strict equality operator token.
	EqEqEq // ===
	// BangEq represents the inequality operator token.
	BangEq // !=
	// BangEqEq represents the strict inequality operator token.
	BangEqEq // !==
	// Lt represents the less-than operator token.
	Lt // <
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// Gt represents the greater-than operator token.
	Gt // >
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=

	// AndAnd represents the logical-and operator token.
	AndAnd // &&
	// OrOr represents the logical-or operator token.
	OrOr // ||

	// Assign represents the assign operator token.
	Assign // =
	// PlusAssign represents the plus assign operator token.
	PlusAssign // +=
	// MinusAssign represents the minus assign operator token.
	MinusAssign // -=
	// StarAssign represents the star assign operator token.
	StarAssign // *=
	// SlashAssign represents the slash assign operator token.
	SlashAssign // /=
)

var kindNames = map[Kind]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Ident:       "Ident",
	KwLet:       "KwLet",
	KwFn:        "KwFn",
	KwIf:        "KwIf",
	KwElse:      "KwElse",
	KwWhile:     "KwWhile",
	KwFor:       "KwFor",
	KwReturn:    "KwReturn",
	KwClass:     "KwClass",
	KwImpl:      "KwImpl",
	KwStruct:    "KwStruct",
	KwEnum:      "KwEnum",
	KwSelf:      "KwSelf",
	KwSuper:     "KwSuper",
	KwUse:       "KwUse",
	KwMod:       "KwMod",
	KwConst:     "KwConst",
	KwStatic:    "KwStatic",
	IntLit:      "IntLit",
	FloatLit:    "FloatLit",
	StringLit:   "StringLit",
	Dot:         "Dot",
	Comma:       "Comma",
	Semicolon:   "Semicolon",
	Bang:        "Bang",
	Question:    "Question",
	Colon:       "Colon",
	ColonColon:  "ColonColon",
	LParen:      "LParen",
	RParen:      "RParen",
	LBracket:    "LBracket",
	RBracket:    "RBracket",
	LBrace:      "LBrace",
	RBrace:      "RBrace",
	Arrow:       "Arrow",
	FatArrow:    "FatArrow",
	Plus:        "Plus",
	Minus:       "Minus",
	Star:        "Star",
	Slash:       "Slash",
	Percent:     "Percent",
	EqEq:        "EqEq",
	EqEqEq:      "EqEqEq",
	BangEq:      "BangEq",
	BangEqEq:    "BangEqEq",
	Lt:          "Lt",
	LtEq:        "LtEq",
	Gt:          "Gt",
	GtEq:        "GtEq",
	AndAnd:      "AndAnd",
	OrOr:        "OrOr",
	Assign:      "Assign",
	PlusAssign:  "PlusAssign",
	MinusAssign: "MinusAssign",
	StarAssign:  "StarAssign",
	SlashAssign: "SlashAssign",
}

// String returns the kind's name for dumps and diagnostics.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(?)"
}

// kindLiterals maps every fixed-text kind to the exact literal it was lexed
// from. Rendering a fixed-text kind and re-tokenizing the result yields the
// same kind back.
var kindLiterals = map[Kind]string{
	KwLet:       "let",
	KwFn:        "fn",
	KwIf:        "if",
	KwElse:      "else",
	KwWhile:     "while",
	KwFor:       "for",
	KwReturn:    "return",
	KwClass:     "class",
	KwImpl:      "impl",
	KwStruct:    "struct",
	KwEnum:      "enum",
	KwSelf:      "self",
	KwSuper:     "super",
	KwUse:       "use",
	KwMod:       "mod",
	KwConst:     "const",
	KwStatic:    "static",
	Dot:         ".",
	Comma:       ",",
	Semicolon:   ";",
	Bang:        "!",
	Question:    "?",
	Colon:       ":",
	ColonColon:  "::",
	LParen:      "(",
	RParen:      ")",
	LBracket:    "[",
	RBracket:    "]",
	LBrace:      "{",
	RBrace:      "}",
	Arrow:       "->",
	FatArrow:    "=>",
	Plus:        "+",
	Minus:       "-",
	Star:        "*",
	Slash:       "/",
	Percent:     "%",
	EqEq:        "==",
	EqEqEq:      "===",
	BangEq:      "!=",
	BangEqEq:    "!==",
	Lt:          "<",
	LtEq:        "<=",
	Gt:          ">",
	GtEq:        ">=",
	AndAnd:      "&&",
	OrOr:        "||",
	Assign:      "=",
	PlusAssign:  "+=",
	MinusAssign: "-=",
	StarAssign:  "*=",
	SlashAssign: "/=",
}

// Literal returns the fixed source text for kinds that correspond to exactly
// one literal string, and ok=false for identifier, literal, and sentinel kinds.
func (k Kind) Literal() (string, bool) {
	lit, ok := kindLiterals[k]
	return lit, ok
}

// FixedKinds returns every kind that has a fixed literal rendering, in an
// unspecified but stable-per-run order.
func FixedKinds() []Kind {
	out := make([]Kind, 0, len(kindLiterals))
	for k := range kindLiterals {
		out = append(out, k)
	}
	return out
}
