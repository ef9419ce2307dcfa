package diagfmt

import (
	"fmt"
	"strings"

	"ruffle/internal/lexer"
	"ruffle/internal/source"
)

// LexError renders one lexical error as a three-line diagnostic:
//
//	error at <row>:<col>:
//	<offending slice>
//	^ <error description>
//
// The position is resolved by scanning the source from the start, so the
// rendering only depends on the file content and the error itself.
func LexError(file *source.File, e *lexer.Error) string {
	pos := source.RowsCols(file.Content, int(e.Span.Start))

	var b strings.Builder
	fmt.Fprintf(&b, "error at %d:%d:\n", pos.Line, pos.Col)
	fmt.Fprintf(&b, "%s\n", e.Slice(file))
	fmt.Fprintf(&b, "^ %s\n", e.Error())
	return b.String()
}
