package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Newline marks a physical line break outside brackets.
	Newline
	// Comment represents a '#' comment running to end of line.
	Comment

	// Ident represents an identifier token.
	Ident
	// KwFalse represents the 'False' keyword.
	KwFalse
	// KwNone represents the 'None' keyword.
	KwNone
	// KwTrue represents the 'True' keyword.
	KwTrue
	// KwAnd represents the 'and' keyword.
	KwAnd
	// KwAs represents the 'as' keyword.
	KwAs
	// KwAssert represents the 'assert' keyword.
	KwAssert
	// KwAsync represents the 'async' keyword.
	KwAsync
	// KwAwait represents the 'await' keyword.
	KwAwait
	// KwBreak represents the 'break' keyword.
	KwBreak
	// KwClass represents the 'class' keyword.
	KwClass
	// KwContinue represents the 'continue' keyword.
	KwContinue
	// KwDef represents the 'def' keyword.
	KwDef
	// KwDel represents the 'del' keyword.
	KwDel
	// KwElif represents the 'elif' keyword.
	KwElif
	// KwElse represents the 'else' keyword.
	KwElse
	// KwExcept represents the 'except' keyword.
	KwExcept
	// KwFinally represents the 'finally' keyword.
	KwFinally
	// KwFor represents the 'for' keyword.
	KwFor
	// KwFrom represents the 'from' keyword.
	KwFrom
	// KwGlobal represents the 'global' keyword.
	KwGlobal
	// KwIf represents the 'if' keyword.
	KwIf
	// KwImport represents the 'import' keyword.
	KwImport
	// KwIn represents the 'in' keyword.
	KwIn
	// KwIs represents the 'is' keyword.
	KwIs
	// KwLambda represents the 'lambda' keyword.
	KwLambda
	// KwNonlocal represents the 'nonlocal' keyword.
	KwNonlocal
	// KwNot represents the 'not' keyword.
	KwNot
	// KwOr represents the 'or' keyword.
	KwOr
	// KwPass represents the 'pass' keyword.
	KwPass
	// KwRaise represents the 'raise' keyword.
	KwRaise
	// KwReturn represents the 'return' keyword.
	KwReturn
	// KwTry represents the 'try' keyword.
	KwTry
	// KwWhile represents the 'while' keyword.
	KwWhile
	// KwWith represents the 'with' keyword.
	KwWith
	// KwYield represents the 'yield' keyword.
	KwYield

	// IntLit represents an integer literal token.
	IntLit
	// FloatLit represents a float literal token.
	FloatLit
	// ImagLit represents an imaginary literal token.
	ImagLit
	// StringLit represents a string literal token, including prefixes
	// and triple-quoted forms.
	StringLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// StarStar represents the power operator token.
	StarStar // **
	// Slash represents the slash operator token.
	Slash // /
	// SlashSlash represents the floor division operator token.
	SlashSlash // //
	// Percent represents the percent operator token.
	Percent // %
	// At represents the matrix-multiply / decorator token.
	At // @
	// Shl represents the left shift operator token.
	Shl // <<
	// Shr represents the right shift operator token.
	Shr // >>
	// Amp represents the bitwise and operator token.
	Amp // &
	// Pipe represents the bitwise or operator token.
	Pipe // |
	// Caret represents the bitwise xor operator token.
	Caret // ^
	// Tilde represents the bitwise not operator token.
	Tilde // ~
	// Lt represents the less-than operator token.
	Lt // <
	// Gt represents the greater-than operator token.
	Gt // >
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// EqEq represents the equality operator token.
	EqEq // ==
	// BangEq represents the inequality operator token.
	BangEq // !=
	// Assign represents the assign operator token.
	Assign // =
	// PlusAssign represents the plus assign operator token.
	PlusAssign // +=
	// MinusAssign represents the minus assign operator token.
	MinusAssign // -=
	// StarAssign represents the star assign operator token.
	StarAssign // *=
	// SlashAssign represents the slash assign operator token.
	SlashAssign // /=
	// SlashSlashAssign represents the floor division assign operator token.
	SlashSlashAssign // //=
	// PercentAssign represents the percent assign operator token.
	PercentAssign // %=
	// AtAssign represents the matrix-multiply assign operator token.
	AtAssign // @=
	// AmpAssign represents the amp assign operator token.
	AmpAssign // &=
	// PipeAssign represents the pipe assign operator token.
	PipeAssign // |=
	// CaretAssign represents the caret assign operator token.
	CaretAssign // ^=
	// ShlAssign represents the shl assign operator token.
	ShlAssign // <<=
	// ShrAssign represents the shr assign operator token.
	ShrAssign // >>=
	// StarStarAssign represents the power assign operator token.
	StarStarAssign // **=
	// Walrus represents the assignment expression operator token.
	Walrus // :=
	// Arrow represents the return annotation operator token.
	Arrow // ->
	// Dot represents the dot operator token.
	Dot // .
	// Ellipsis represents the '...' token.
	Ellipsis // ...
	// Comma represents the comma token.
	Comma // ,
	// Colon represents the colon token.
	Colon // :
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// Backslash represents an explicit line-continuation marker.
	Backslash // \
)

var kindNames = map[Kind]string{
	Invalid: "invalid", EOF: "eof", Newline: "newline", Comment: "comment",
	Ident: "ident", IntLit: "int", FloatLit: "float", ImagLit: "imag", StringLit: "string",
	Plus: "+", Minus: "-", Star: "*", StarStar: "**", Slash: "/", SlashSlash: "//",
	Percent: "%", At: "@", Shl: "<<", Shr: ">>", Amp: "&", Pipe: "|", Caret: "^",
	Tilde: "~", Lt: "<", Gt: ">", LtEq: "<=", GtEq: ">=", EqEq: "==", BangEq: "!=",
	Assign: "=", PlusAssign: "+=", MinusAssign: "-=", StarAssign: "*=",
	SlashAssign: "/=", SlashSlashAssign: "//=", PercentAssign: "%=", AtAssign: "@=",
	AmpAssign: "&=", PipeAssign: "|=", CaretAssign: "^=", ShlAssign: "<<=",
	ShrAssign: ">>=", StarStarAssign: "**=", Walrus: ":=", Arrow: "->",
	Dot: ".", Ellipsis: "...", Comma: ",", Colon: ":", Semicolon: ";",
	LParen: "(", RParen: ")", LBracket: "[", RBracket: "]", LBrace: "{", RBrace: "}",
	Backslash: "\\",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	if text, ok := keywordNames[k]; ok {
		return text
	}
	return "unknown"
}
