package parser

import (
	"fmt"

	"pyfmt/internal/diag"
	"pyfmt/internal/lexer"
	"pyfmt/internal/source"
	"pyfmt/internal/token"
)

// LogicalLine is one statement after physical lines are joined: bracket
// interiors and backslash continuations collapse into a single line.
// Comments, newline markers, and the continuation backslashes themselves
// are stripped; Tokens holds code tokens only.
type LogicalLine struct {
	Tokens    []token.Token
	StartLine int // first physical line, 1-based
	EndLine   int // last physical line, 1-based
	Indent    int // indentation width of the first physical line
}

// tabStop matches the CPython tokenizer's tab advance.
const tabStop = 8

// indentWidth measures the leading whitespace of a physical line, with
// tabs advancing to the next multiple of tabStop.
func indentWidth(line string) int {
	w := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			w++
		case '\t':
			w = (w/tabStop + 1) * tabStop
		default:
			return w
		}
	}
	return w
}

func matchingCloser(open token.Kind) token.Kind {
	switch open {
	case token.LParen:
		return token.RParen
	case token.LBracket:
		return token.RBracket
	default:
		return token.RBrace
	}
}

func unclosedCode(open token.Kind) diag.Code {
	switch open {
	case token.LParen:
		return diag.SynUnclosedParen
	case token.LBracket:
		return diag.SynUnclosedBracket
	default:
		return diag.SynUnclosedBrace
	}
}

// buildLogicalLines drains the lexer and groups its tokens into logical
// lines, validating bracket pairing along the way. Newlines inside an
// open bracket pair join lines implicitly; a Backslash token joins them
// explicitly (the lexer consumes the newline after the backslash).
func buildLogicalLines(fs *source.FileSet, file *source.File, lx *lexer.Lexer, rep diag.Reporter) []LogicalLine {
	var (
		lines   []LogicalLine
		cur     []token.Token
		openers []token.Token
		lastTok token.Token
	)

	flush := func() {
		if len(cur) == 0 {
			return
		}
		first, _ := fs.Resolve(cur[0].Span)
		_, last := fs.Resolve(cur[len(cur)-1].Span)
		startLine := int(first.Line)
		lines = append(lines, LogicalLine{
			Tokens:    cur,
			StartLine: startLine,
			EndLine:   int(last.Line),
			Indent:    indentWidth(file.GetLine(first.Line)),
		})
		cur = nil
	}

	for {
		tok := lx.Next()
		switch {
		case tok.Kind == token.EOF:
			flush()
			if lastTok.Kind == token.Backslash && len(openers) == 0 {
				rep.Report(diag.SynUnexpectedToken, diag.SevError, lastTok.Span,
					"line continuation at end of file", nil)
			}
			for _, open := range openers {
				rep.Report(unclosedCode(open.Kind), diag.SevError, open.Span,
					fmt.Sprintf("'%s' was never closed", open.Text), nil)
			}
			return lines

		case tok.Kind == token.Newline:
			if len(openers) == 0 {
				flush()
			}

		case tok.Kind == token.Comment, tok.Kind == token.Backslash:
			// joined or stripped; not part of the statement

		case tok.Kind == token.Invalid:
			// already reported by the lexer

		case tok.IsOpenBracket():
			openers = append(openers, tok)
			cur = append(cur, tok)

		case tok.IsCloseBracket():
			if len(openers) == 0 {
				rep.Report(diag.SynUnexpectedCloser, diag.SevError, tok.Span,
					fmt.Sprintf("unmatched '%s'", tok.Text), nil)
			} else {
				open := openers[len(openers)-1]
				openers = openers[:len(openers)-1]
				if matchingCloser(open.Kind) != tok.Kind {
					rep.Report(diag.SynMismatchedBracket, diag.SevError, tok.Span,
						fmt.Sprintf("closing '%s' does not match opening '%s'", tok.Text, open.Text),
						[]diag.Note{{Span: open.Span, Msg: "opened here"}})
				}
			}
			cur = append(cur, tok)

		default:
			cur = append(cur, tok)
		}
		if tok.Kind != token.Comment {
			lastTok = tok
		}
	}
}
