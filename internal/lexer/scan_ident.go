package lexer

import (
	"pyfmt/internal/token"
)

// scanIdentOrPrefixedString scans an identifier or keyword, with one
// twist: a short identifier that is a legal string prefix and sits
// directly against a quote character restarts as a string literal.
func (lx *Lexer) scanIdentOrPrefixedString() token.Token {
	start := lx.cursor.Mark()

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b < 0x80 {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r, _ := lx.peekRune()
		if !isIdentContinueRune(r) {
			break
		}
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if q := lx.cursor.Peek(); (q == '"' || q == '\'') && isStringPrefix(text) {
		return lx.scanString(start)
	}

	if kind, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: kind, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
