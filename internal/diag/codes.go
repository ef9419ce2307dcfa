package diag

import (
	"fmt"
)

// Code identifies one diagnostic condition.
type Code uint16

const (
	// UnknownCode is the fallback for unclassified diagnostics.
	UnknownCode Code = 0

	// Lexical
	LexInfo           Code = 1000
	LexUnexpectedChar Code = 1001
	LexIntOverflow    Code = 1002
	LexBadInt         Code = 1003
	LexBadFloat       Code = 1004

	// Driver I/O
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:       "Unknown error",
	LexInfo:           "Lexical information",
	LexUnexpectedChar: "unexpected character",
	LexIntOverflow:    "integer literal overflows i32",
	LexBadInt:         "malformed integer literal",
	LexBadFloat:       "malformed float literal",
	IOLoadFileError:   "I/O load file error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
