package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the catch-all for unclassified failures.
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003

	// Syntactic (parse gate)
	SynInfo                 Code = 2000
	SynUnexpectedToken      Code = 2001
	SynUnclosedParen        Code = 2002
	SynUnclosedBracket      Code = 2003
	SynUnclosedBrace        Code = 2004
	SynMismatchedBracket    Code = 2005
	SynUnexpectedCloser     Code = 2006
	SynUnexpectedIndent     Code = 2007
	SynInconsistentDedent   Code = 2008
	SynExpectedBlock        Code = 2009
	SynDanglingContinuation Code = 2010
	SynUnterminatedString   Code = 2011

	// Formatting / refactor
	FmtInfo             Code = 3000
	FmtLongLine         Code = 3001
	FmtUnusedImport     Code = 3002
	FmtBooleanReturn    Code = 3003
	FmtStringConversion Code = 3004

	// IO / external tools
	IOError          Code = 4000
	IOReadFailed     Code = 4001
	IOWriteFailed    Code = 4002
	ExtToolNotFound  Code = 4003
	ExtToolFailed    Code = 4004
	ExtToolBadOutput Code = 4005
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown error",

	LexInfo:               "lexical note",
	LexUnknownChar:        "unknown character",
	LexUnterminatedString: "unterminated string literal",
	LexBadNumber:          "malformed numeric literal",

	SynInfo:                 "syntax note",
	SynUnexpectedToken:      "unexpected token",
	SynUnclosedParen:        "unclosed parenthesis",
	SynUnclosedBracket:      "unclosed bracket",
	SynUnclosedBrace:        "unclosed brace",
	SynMismatchedBracket:    "mismatched closing bracket",
	SynUnexpectedCloser:     "unmatched closing bracket",
	SynUnexpectedIndent:     "unexpected indent",
	SynInconsistentDedent:   "dedent does not match any outer indentation level",
	SynExpectedBlock:        "expected an indented block",
	SynDanglingContinuation: "continuation clause without a matching opener",
	SynUnterminatedString:   "unterminated triple-quoted string",

	FmtInfo:             "formatting note",
	FmtLongLine:         "line exceeds configured width",
	FmtUnusedImport:     "imported name is never used",
	FmtBooleanReturn:    "if/else returning literals can collapse to a bool expression",
	FmtStringConversion: "string formatting can convert to an f-string",

	IOError:          "input/output error",
	IOReadFailed:     "failed to read file",
	IOWriteFailed:    "failed to write file",
	ExtToolNotFound:  "external formatter not found on PATH",
	ExtToolFailed:    "external formatter exited with an error",
	ExtToolBadOutput: "external formatter produced no output",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("FMT%04d", ic)
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
