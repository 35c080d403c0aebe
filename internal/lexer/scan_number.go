package lexer

import (
	"pyfmt/internal/token"
)

// scanNumber scans decimal/hex/octal/binary integers, floats with
// optional exponent, and imaginary literals (trailing j/J). Underscore
// digit separators are accepted anywhere a digit may appear.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'x' || b1 == 'X') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		if !lx.eatDigits(isHex) {
			lx.report("bad-number", lx.cursor.SpanFrom(start), "hex literal needs at least one digit")
			return emit(token.Invalid)
		}
		return emit(token.IntLit)
	}
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'o' || b1 == 'O') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		if !lx.eatDigits(isOct) {
			lx.report("bad-number", lx.cursor.SpanFrom(start), "octal literal needs at least one digit")
			return emit(token.Invalid)
		}
		return emit(token.IntLit)
	}
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'b' || b1 == 'B') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		if !lx.eatDigits(isBin) {
			lx.report("bad-number", lx.cursor.SpanFrom(start), "binary literal needs at least one digit")
			return emit(token.Invalid)
		}
		return emit(token.IntLit)
	}

	lx.eatDigits(isDec)

	if lx.cursor.Peek() == '.' {
		// Not a float when this is actually an attribute access like 1 .real;
		// a dot directly followed by a digit or a dangling dot both scan
		// as part of the number, matching the Python tokenizer.
		lx.cursor.Bump()
		lx.eatDigits(isDec)
		kind = token.FloatLit
	}

	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if !lx.eatDigits(isDec) {
			// "1e" is ident-adjacent garbage; rewind the exponent.
			lx.cursor.Reset(mark)
		} else {
			kind = token.FloatLit
		}
	}

	if b := lx.cursor.Peek(); b == 'j' || b == 'J' {
		lx.cursor.Bump()
		kind = token.ImagLit
	}

	return emit(kind)
}

// eatDigits consumes a run of digits matching class, allowing
// underscore separators between digits. Reports whether at least one
// digit was consumed.
func (lx *Lexer) eatDigits(class func(byte) bool) bool {
	seen := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if class(b) {
			seen = true
			lx.cursor.Bump()
			continue
		}
		if b == '_' {
			if _, b1, ok := lx.cursor.Peek2(); ok && class(b1) {
				lx.cursor.Bump()
				continue
			}
			break
		}
		break
	}
	return seen
}
