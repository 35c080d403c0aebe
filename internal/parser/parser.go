// Package parser builds the statement-outline tree behind the parse
// gate. It is not a full Python grammar (an explicit non-goal): it
// joins physical lines into logical statements, validates bracket and
// block structure, and classifies statements by their leading keyword.
// Anything deeper than statement shape is out of scope.
package parser

import (
	"pyfmt/internal/ast"
	"pyfmt/internal/diag"
	"pyfmt/internal/lexer"
	"pyfmt/internal/source"
	"pyfmt/internal/token"
)

// Options configures a parse run.
type Options struct {
	Reporter diag.Reporter // may be nil
}

// Result carries the outline tree plus the logical lines it was built
// from; transforms use both.
type Result struct {
	File   *source.File
	Module *ast.Node
	Lines  []LogicalLine
}

// Parse lexes and parses the file, reporting problems through
// opts.Reporter. It always returns a best-effort result; callers
// decide severity by inspecting their diagnostic sink.
func Parse(fs *source.FileSet, id source.FileID, opts Options) *Result {
	file := fs.Get(id)
	rep := opts.Reporter
	if rep == nil {
		rep = diag.NopReporter{}
	}

	lx := lexer.New(file, lexer.Options{Reporter: &lexReporter{r: rep}})
	lines := buildLogicalLines(fs, file, lx, rep)
	module := buildOutline(fs, file, lines, rep)

	return &Result{File: file, Module: module, Lines: lines}
}

// lexReporter adapts the lexer's thin reporter interface onto diag.
type lexReporter struct {
	r diag.Reporter
}

func (a *lexReporter) Report(kind string, span source.Span, msg string) {
	code := diag.UnknownCode
	switch kind {
	case "unterminated-string":
		code = diag.LexUnterminatedString
	case "unknown-char":
		code = diag.LexUnknownChar
	case "bad-number":
		code = diag.LexBadNumber
	}
	a.r.Report(code, diag.SevError, span, msg, nil)
}

// classify determines a statement node kind from its leading tokens.
func classify(toks []token.Token) ast.Kind {
	if len(toks) == 0 {
		return ast.Bad
	}
	first := toks[0]
	if first.Kind == token.KwAsync && len(toks) > 1 {
		first = toks[1]
	}
	switch first.Kind {
	case token.KwImport:
		return ast.Import
	case token.KwFrom:
		return ast.FromImport
	case token.KwIf:
		return ast.If
	case token.KwElif:
		return ast.Elif
	case token.KwElse:
		return ast.Else
	case token.KwWhile:
		return ast.While
	case token.KwFor:
		return ast.For
	case token.KwTry:
		return ast.Try
	case token.KwExcept:
		return ast.Except
	case token.KwFinally:
		return ast.Finally
	case token.KwWith:
		return ast.With
	case token.KwDef:
		return ast.FuncDef
	case token.KwClass:
		return ast.ClassDef
	case token.KwReturn:
		return ast.Return
	case token.At:
		return ast.Decorator
	case token.StringLit:
		if len(toks) == 1 {
			return ast.ExprStmt
		}
		return ast.Simple
	default:
		return ast.Simple
	}
}
