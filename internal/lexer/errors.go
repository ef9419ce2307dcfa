package lexer

import (
	"ruffle/internal/source"
	"ruffle/internal/token"
)

// ErrorKind classifies a malformed lexeme.
type ErrorKind uint8

const (
	// ErrUnexpectedChar is the catch-all for any byte no rule matches.
	// The name of its message ("non ascii character") is a holdover from
	// the ASCII-only assumption; in practice this covers every stray byte.
	ErrUnexpectedChar ErrorKind = iota
	// ErrInvalidInteger is an integer lexeme whose value does not decode;
	// Reason distinguishes "overflow" from "other".
	ErrInvalidInteger
	// ErrInvalidFloat is a float lexeme whose value does not decode.
	ErrInvalidFloat
)

// Error describes one malformed lexeme. Scanning resumes after it, so a
// single pass may yield a mix of tokens and errors.
type Error struct {
	Kind ErrorKind
	Span source.Span
	// Reason is set for ErrInvalidInteger: "overflow" or "other".
	Reason string
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrUnexpectedChar:
		return "non ascii character"
	case ErrInvalidInteger:
		return "invalid integer: " + e.Reason
	case ErrInvalidFloat:
		return "invalid float"
	}
	return "unknown lexing error"
}

// Slice returns the offending lexeme text from the file the error was
// produced from.
func (e *Error) Slice(f *source.File) string {
	return f.Slice(e.Span)
}

// Result is one element of a lex pass: either a token or the error that one
// malformed lexeme produced. Exactly one of the two is meaningful; Err is
// nil on success.
type Result struct {
	Token token.Token
	Err   *Error
}

// IsErr reports whether the result carries an error.
func (r Result) IsErr() bool { return r.Err != nil }
