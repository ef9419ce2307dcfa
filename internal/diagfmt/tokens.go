package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"ruffle/internal/lexer"
	"ruffle/internal/source"
)

// TokenOutput is the JSON shape of one lex result.
type TokenOutput struct {
	Kind    string      `json:"kind"`
	Text    string      `json:"text,omitempty"`
	Span    source.Span `json:"span"`
	Leading []string    `json:"leading,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// FormatTokensPretty writes one numbered line per lex result, with the
// token's span positions and leading trivia. Errors show up inline with
// their description.
func FormatTokensPretty(w io.Writer, results []lexer.Result, fs *source.FileSet) error {
	for i, res := range results {
		tok := res.Token
		startPos, endPos := fs.Resolve(tok.Span)

		var leading []string
		for _, trivia := range tok.Leading {
			leading = append(leading, trivia.Kind.String())
		}

		fmt.Fprintf(w, "%3d: %-12s", i+1, tok.Kind.String())

		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}

		fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)

		if res.Err != nil {
			fmt.Fprintf(w, " (%s)", res.Err.Error())
		}

		if len(leading) > 0 {
			fmt.Fprintf(w, " (leading: %s)", strings.Join(leading, ", "))
		}

		fmt.Fprintln(w)
	}
	return nil
}

// FormatTokensJSON writes the lex results as an indented JSON array.
func FormatTokensJSON(w io.Writer, results []lexer.Result) error {
	output := make([]TokenOutput, 0, len(results))

	for _, res := range results {
		tok := res.Token

		var leading []string
		for _, trivia := range tok.Leading {
			leading = append(leading, trivia.Kind.String())
		}

		tokenOut := TokenOutput{
			Kind:    tok.Kind.String(),
			Text:    tok.Text,
			Span:    tok.Span,
			Leading: leading,
		}
		if res.Err != nil {
			tokenOut.Error = res.Err.Error()
		}

		output = append(output, tokenOut)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// FormatTokensPlain prints every token's display form on one space-separated
// line. The first error aborts the dump: its three-line rendering is returned
// as the error.
func FormatTokensPlain(w io.Writer, results []lexer.Result, file *source.File) error {
	for _, res := range results {
		if res.Err != nil {
			return fmt.Errorf("%s", LexError(file, res.Err))
		}
	}
	for i, res := range results {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprint(w, res.Token.String())
	}
	if len(results) > 0 {
		fmt.Fprintln(w)
	}
	return nil
}
