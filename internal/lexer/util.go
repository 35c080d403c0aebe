package lexer

import (
	"unicode"
	"unicode/utf8"
)

// Rune access on top of Cursor.

func (lx *Lexer) peekRune() (r rune, size int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	b := lx.cursor.Peek()
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	r, sz := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
	return r, sz
}

func (lx *Lexer) bumpRune() {
	_, sz := lx.peekRune()
	if sz == 0 {
		return
	}
	lx.cursor.Off += uint32(sz)
}

// ASCII fast-path classifiers; Unicode goes through the rune variants.

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}
func isIdentStartRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
func isIdentContinueRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }
func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}
func isOct(b byte) bool { return b >= '0' && b <= '7' }
func isBin(b byte) bool { return b == '0' || b == '1' }

// For the ".5" case: a dot followed by a digit starts a number.
func (lx *Lexer) isNumberAfterDot() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '.' && isDec(b1)
}

// Greedy operator matching: try3/try2 consume the bytes on a match.

func (lx *Lexer) try3(a, b, c byte) bool {
	b0, b1, b2, ok := lx.cursor.Peek3()
	if !ok || b0 != a || b1 != b || b2 != c {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}

func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}

// isStringPrefix reports whether word is a valid string-literal prefix
// (r, b, u, f and their two-letter combinations, any case).
func isStringPrefix(word string) bool {
	if len(word) == 0 || len(word) > 2 {
		return false
	}
	seenR, seenB, seenF := false, false, false
	for i := 0; i < len(word); i++ {
		switch word[i] {
		case 'r', 'R':
			if seenR {
				return false
			}
			seenR = true
		case 'b', 'B':
			if seenB || seenF {
				return false
			}
			seenB = true
		case 'f', 'F':
			if seenF || seenB {
				return false
			}
			seenF = true
		case 'u', 'U':
			if len(word) != 1 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
