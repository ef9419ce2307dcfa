package lexer

import (
	"ruffle/internal/source"
	"ruffle/internal/token"
)

// Lexer pulls significant tokens out of one source file. It holds no state
// other than its position, so re-lexing the same file reproduces the same
// sequence.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *lookahead     // 1-element token buffer
	hold   []token.Trivia // accumulated leading trivia
}

type lookahead struct {
	tok token.Token
	err *Error
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token with its leading trivia attached.
// When the lexeme is malformed the token has Kind Invalid and the error
// describes why; scanning resumes at the following lexeme either way.
// After EOF it always returns EOF.
func (lx *Lexer) Next() (token.Token, *Error) {
	if lx.look != nil {
		la := *lx.look
		lx.look = nil
		return la.tok, la.err
	}

	lx.collectLeadingTrivia()

	// Leading trivia is not glued onto EOF.
	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
		}, nil
	}

	ch := lx.cursor.Peek()
	var tok token.Token
	var err *Error

	switch {
	case isIdentStartByte(ch):
		// keywords are exact literal matches inside the identifier rule
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		tok, err = lx.scanNumber()

	case ch == '"':
		tok, err = lx.scanString()

	default:
		tok, err = lx.scanOperatorOrPunct()
	}

	tok.Leading = lx.hold
	lx.hold = nil

	return tok, err
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t, err := lx.Next()
	lx.look = &lookahead{tok: t, err: err}
	return t
}

// Scan materializes one full pass over the file: one Result per non-skipped
// lexeme in source order, EOF excluded. The pass is a pure function of the
// file content; calling it again yields an identical sequence.
func Scan(file *source.File, opts Options) []Result {
	lx := New(file, opts)
	var results []Result
	for {
		tok, err := lx.Next()
		if tok.Kind == token.EOF {
			return results
		}
		results = append(results, Result{Token: tok, Err: err})
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
