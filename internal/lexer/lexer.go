// Package lexer tokenizes Python source text into the token kinds the
// formatter understands. It is deliberately shallow: no INDENT/DEDENT
// bookkeeping, no f-string interior parsing. Indentation decisions
// belong to the format package; the lexer's job is exact string,
// comment, number, and operator boundaries.
package lexer

import (
	"pyfmt/internal/source"
	"pyfmt/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1-element lookahead buffer
	failed bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Failed reports whether any lexical error was encountered so far.
func (lx *Lexer) Failed() bool { return lx.failed }

// Next returns the next token. Horizontal whitespace is skipped;
// newlines come through as Newline tokens, comments as Comment tokens,
// and a backslash-newline pair as a Backslash token. After EOF the
// lexer always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipHorizontalSpace()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	ch := lx.cursor.Peek()

	switch {
	case ch == '\n':
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		return token.Token{Kind: token.Newline, Span: lx.cursor.SpanFrom(start), Text: "\n"}

	case ch == '#':
		return lx.scanComment()

	case ch == '\\':
		return lx.scanBackslash()

	case isIdentStartByte(ch) || ch >= 0x80:
		// May turn out to be a string prefix ("r", "f", "rb", ...)
		// directly followed by a quote.
		return lx.scanIdentOrPrefixedString()

	case isDec(ch):
		return lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		return lx.scanNumber()

	case ch == '"' || ch == '\'':
		return lx.scanString(lx.cursor.Mark())

	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Tokens drains the lexer and returns every token up to and including EOF.
func (lx *Lexer) Tokens() []token.Token {
	out := make([]token.Token, 0, len(lx.file.Content)/4)
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func (lx *Lexer) skipHorizontalSpace() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\r', '\f':
			lx.cursor.Bump()
		default:
			return
		}
	}
}

func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Comment, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) scanBackslash() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	// An escaped newline is consumed together with the backslash; the
	// Backslash token itself marks the explicit continuation.
	lx.cursor.Eat('\r')
	lx.cursor.Eat('\n')
	return token.Token{Kind: token.Backslash, Span: lx.cursor.SpanFrom(start), Text: "\\"}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
