package lexer

import (
	"pyfmt/internal/token"
)

// scanString scans a single- or triple-quoted string literal starting
// at mark (which may cover an already-consumed prefix such as r or f).
// The cursor stands on the opening quote character.
func (lx *Lexer) scanString(start Mark) token.Token {
	quote := lx.cursor.Bump()

	triple := false
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == quote && b1 == quote {
		lx.cursor.Bump()
		lx.cursor.Bump()
		triple = true
	} else if lx.cursor.Peek() == quote {
		// Empty string "" or ''.
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.StringLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == '\\' {
			// Backslash escapes the next character, even in raw
			// strings as far as tokenization is concerned.
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
			continue
		}

		if b == '\n' && !triple {
			sp := lx.cursor.SpanFrom(start)
			lx.report("unterminated-string", sp, "string literal not closed before end of line")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}

		if b == quote {
			if !triple {
				lx.cursor.Bump()
				sp := lx.cursor.SpanFrom(start)
				return token.Token{Kind: token.StringLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
			}
			if b0, b1, b2, ok := lx.cursor.Peek3(); ok && b0 == quote && b1 == quote && b2 == quote {
				lx.cursor.Bump()
				lx.cursor.Bump()
				lx.cursor.Bump()
				sp := lx.cursor.SpanFrom(start)
				return token.Token{Kind: token.StringLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
			}
			lx.cursor.Bump()
			continue
		}

		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	if triple {
		lx.report("unterminated-string", sp, "triple-quoted string not closed before end of file")
	} else {
		lx.report("unterminated-string", sp, "string literal not closed before end of file")
	}
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
