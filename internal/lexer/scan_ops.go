package lexer

import (
	"fmt"

	"pyfmt/internal/token"
)

// scanOperatorOrPunct scans operators greedily: 3-byte sequences
// first, then 2-byte, then single characters.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}

	switch {
	case lx.try3('*', '*', '='):
		return emit(token.StarStarAssign)
	case lx.try3('/', '/', '='):
		return emit(token.SlashSlashAssign)
	case lx.try3('<', '<', '='):
		return emit(token.ShlAssign)
	case lx.try3('>', '>', '='):
		return emit(token.ShrAssign)
	case lx.try3('.', '.', '.'):
		return emit(token.Ellipsis)
	case lx.try2('*', '*'):
		return emit(token.StarStar)
	case lx.try2('/', '/'):
		return emit(token.SlashSlash)
	case lx.try2('<', '<'):
		return emit(token.Shl)
	case lx.try2('>', '>'):
		return emit(token.Shr)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	case lx.try2('=', '='):
		return emit(token.EqEq)
	case lx.try2('!', '='):
		return emit(token.BangEq)
	case lx.try2('+', '='):
		return emit(token.PlusAssign)
	case lx.try2('-', '='):
		return emit(token.MinusAssign)
	case lx.try2('*', '='):
		return emit(token.StarAssign)
	case lx.try2('/', '='):
		return emit(token.SlashAssign)
	case lx.try2('%', '='):
		return emit(token.PercentAssign)
	case lx.try2('@', '='):
		return emit(token.AtAssign)
	case lx.try2('&', '='):
		return emit(token.AmpAssign)
	case lx.try2('|', '='):
		return emit(token.PipeAssign)
	case lx.try2('^', '='):
		return emit(token.CaretAssign)
	case lx.try2(':', '='):
		return emit(token.Walrus)
	case lx.try2('-', '>'):
		return emit(token.Arrow)
	}

	b := lx.cursor.Bump()
	switch b {
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '%':
		return emit(token.Percent)
	case '@':
		return emit(token.At)
	case '&':
		return emit(token.Amp)
	case '|':
		return emit(token.Pipe)
	case '^':
		return emit(token.Caret)
	case '~':
		return emit(token.Tilde)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case '=':
		return emit(token.Assign)
	case '.':
		return emit(token.Dot)
	case ',':
		return emit(token.Comma)
	case ':':
		return emit(token.Colon)
	case ';':
		return emit(token.Semicolon)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	}

	sp := lx.cursor.SpanFrom(start)
	lx.report("unknown-char", sp, fmt.Sprintf("unexpected character %q", b))
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
