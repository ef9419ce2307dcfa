package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"ruffle/internal/diag"
	"ruffle/internal/source"
)

// Pretty renders diagnostics in a human-readable form, one block per
// diagnostic (call bag.Sort() beforehand for a stable order):
//
//	<path>:<line>:<col>: <SEV> <ID>: <message>
//	  <source line>
//	  ^~~~
//
// followed by notes in the same format. Colors are applied per severity
// when opts.Color is set.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	if file == nil {
		// diagnostics without a source file (load failures) get a bare line
		sev := d.Severity.String()
		if opts.Color {
			sev = severityColor(d.Severity).Sprint(sev)
		}
		fmt.Fprintf(w, "%s %s: %s\n", sev, d.Code.ID(), d.Message)
		return
	}
	start, _ := fs.Resolve(d.Primary)

	sev := d.Severity.String()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
	}

	path := file.FormatPath(opts.PathMode.format(), fs.BaseDir())
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, start.Line, start.Col, sev, d.Code.ID(), d.Message)

	writeSourceContext(w, file, d.Primary, start, opts)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			nStart, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "%s:%d:%d: note: %s\n", path, nStart.Line, nStart.Col, n.Msg)
		}
	}
}

func writeSourceContext(w io.Writer, file *source.File, span source.Span, start source.LineCol, opts PrettyOpts) {
	for i := int8(0); i < opts.Context; i++ {
		back := uint32(int32(start.Line) - int32(opts.Context) + int32(i))
		if back == 0 || back >= start.Line {
			continue
		}
		if line := file.GetLine(back); line != "" {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}

	line := file.GetLine(start.Line)
	if line == "" && span.Len() == 0 {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	// Caret alignment accounts for the display width of everything before
	// the span on its line (tabs, wide runes).
	prefix := ""
	if int(start.Col)-1 <= len(line) {
		prefix = line[:start.Col-1]
	}
	pad := strings.Repeat(" ", runewidth.StringWidth(prefix))

	width := int(span.Len())
	rest := len(line) - len(prefix)
	if width > rest {
		width = rest
	}
	if width < 1 {
		width = 1
	}
	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = severityColor(diag.SevError).Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", pad, marker)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgCyan)
	}
}
