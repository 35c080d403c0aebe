package token

import (
	"pyfmt/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, ImagLit, StringLit, KwTrue, KwFalse, KwNone:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	_, ok := keywordNames[t.Kind]
	return ok
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsOpenBracket reports whether the token opens a bracket pair.
func (t Token) IsOpenBracket() bool {
	switch t.Kind {
	case LParen, LBracket, LBrace:
		return true
	default:
		return false
	}
}

// IsCloseBracket reports whether the token closes a bracket pair.
func (t Token) IsCloseBracket() bool {
	switch t.Kind {
	case RParen, RBracket, RBrace:
		return true
	default:
		return false
	}
}

// IsBinaryOp reports whether the token takes exactly one space on each
// side under operator-spacing normalization. The bare '=' is included;
// its keyword-argument exception is decided by the caller from context.
func (t Token) IsBinaryOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, StarStar, Slash, SlashSlash, Percent,
		Shl, Shr, Lt, Gt, LtEq, GtEq, EqEq, BangEq, Assign,
		PlusAssign, MinusAssign, StarAssign, SlashAssign, SlashSlashAssign,
		PercentAssign, AmpAssign, PipeAssign, CaretAssign,
		ShlAssign, ShrAssign, StarStarAssign:
		return true
	default:
		return false
	}
}

// IsSpacedKeywordOp reports whether the token is a keyword-style
// boolean operator that takes surrounding spaces (and/or/in/is).
func (t Token) IsSpacedKeywordOp() bool {
	switch t.Kind {
	case KwAnd, KwOr, KwIn, KwIs:
		return true
	default:
		return false
	}
}
