package token

var keywords = map[string]Kind{
	"False":    KwFalse,
	"None":     KwNone,
	"True":     KwTrue,
	"and":      KwAnd,
	"as":       KwAs,
	"assert":   KwAssert,
	"async":    KwAsync,
	"await":    KwAwait,
	"break":    KwBreak,
	"class":    KwClass,
	"continue": KwContinue,
	"def":      KwDef,
	"del":      KwDel,
	"elif":     KwElif,
	"else":     KwElse,
	"except":   KwExcept,
	"finally":  KwFinally,
	"for":      KwFor,
	"from":     KwFrom,
	"global":   KwGlobal,
	"if":       KwIf,
	"import":   KwImport,
	"in":       KwIn,
	"is":       KwIs,
	"lambda":   KwLambda,
	"nonlocal": KwNonlocal,
	"not":      KwNot,
	"or":       KwOr,
	"pass":     KwPass,
	"raise":    KwRaise,
	"return":   KwReturn,
	"try":      KwTry,
	"while":    KwWhile,
	"with":     KwWith,
	"yield":    KwYield,
}

var keywordNames = func() map[Kind]string {
	names := make(map[Kind]string, len(keywords))
	for text, kind := range keywords {
		names[kind] = text
	}
	return names
}()

// LookupKeyword returns the keyword kind for ident. Keywords are
// case-sensitive; only the exact spelling is recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// blockOpeners are the compound-statement keywords whose colon-terminated
// header opens an indented suite.
var blockOpeners = map[string]bool{
	"if": true, "elif": true, "else": true, "for": true, "while": true,
	"try": true, "except": true, "finally": true, "with": true,
	"def": true, "class": true,
}

// continuationKeywords continue a preceding compound statement at a
// shallower indentation (the else-branch family).
var continuationKeywords = map[string]bool{
	"elif": true, "else": true, "except": true, "finally": true,
}

// flowKeywords are the bare flow-control statements the block-repair
// pass may relocate.
var flowKeywords = map[string]bool{
	"return": true, "break": true, "continue": true, "raise": true, "pass": true,
}

// IsBlockOpener reports whether word opens a colon-terminated suite.
func IsBlockOpener(word string) bool { return blockOpeners[word] }

// IsContinuationKeyword reports whether word belongs to the else-branch
// family (elif/else/except/finally).
func IsContinuationKeyword(word string) bool { return continuationKeywords[word] }

// IsFlowKeyword reports whether word is a bare flow-control statement
// (return/break/continue/raise/pass).
func IsFlowKeyword(word string) bool { return flowKeywords[word] }
