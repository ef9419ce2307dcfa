package lexer

import (
	"ruffle/internal/diag"
	"ruffle/internal/source"
)

// Options configures a Lexer.
type Options struct {
	// Reporter receives a diagnostic per malformed lexeme. May be nil;
	// errors are still returned from Next either way and lexing continues.
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		diag.ReportError(lx.opts.Reporter, code, sp, msg)
	}
}

func (lx *Lexer) errLexNote(code diag.Code, sp source.Span, msg string, note diag.Note) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, []diag.Note{note})
	}
}
