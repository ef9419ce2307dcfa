package token

var keywords = map[string]Kind{
	"let":    KwLet,
	"fn":     KwFn,
	"if":     KwIf,
	"else":   KwElse,
	"while":  KwWhile,
	"for":    KwFor,
	"return": KwReturn,
	"class":  KwClass,
	"impl":   KwImpl,
	"struct": KwStruct,
	"enum":   KwEnum,
	"self":   KwSelf,
	"super":  KwSuper,
	"use":    KwUse,
	"mod":    KwMod,
	"const":  KwConst,
	"static": KwStatic,
}

// LookupKeyword returns the keyword kind for an identifier lexeme, if it is
// one. An exact literal match always beats the general identifier pattern,
// so "self" is KwSelf while "selfish" stays an identifier. Keywords are
// case-sensitive; only lowercase forms are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
