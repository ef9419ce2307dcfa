package token

import "ruffle/internal/source"

// TriviaKind classifies skipped source text.
type TriviaKind uint8

const (
	// TriviaSpace is a run of spaces, tabs, or form feeds.
	TriviaSpace TriviaKind = iota
	// TriviaNewline is a run of newlines.
	TriviaNewline
	// TriviaLineComment is a // comment up to (not including) the newline.
	TriviaLineComment
	// TriviaBlockComment is a /* ... */ comment. Block comments do not nest;
	// an unterminated one runs to end of input.
	TriviaBlockComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	}
	return "Trivia(?)"
}

// Trivia is one piece of skipped text attached to the following token.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
