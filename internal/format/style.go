package format

import (
	"regexp"
	"strings"

	"pyfmt/internal/lexer"
	"pyfmt/internal/parser"
	"pyfmt/internal/source"
	"pyfmt/internal/token"
)

// Style runs the parse-gated pipeline: whitespace pet peeves, operator
// spacing, keyword-argument equals, comment normalization, blank-line
// enforcement, reindentation, and optional long-line wrapping, in that
// order. On a gate failure the input comes back untouched along with
// the syntax error.
func Style(text string, st Settings) (string, error) {
	if _, serr := parser.Check(text); serr != nil {
		return text, serr
	}
	st = st.withDefaults()

	code := Normalize(text)
	code = Detab(code, st.IndentWidth)
	code = StripTrailingWhitespace(code)
	code = fixPetPeeves(code)
	code = fixOperatorSpacing(code)
	code = fixKeywordEquals(code)
	code = reflowComments(code, st.CommentWidth)
	code = enforceBlankLines(code)
	code = Reindent(code, st.IndentWidth)
	if st.WrapLongLines {
		code = wrapLongLines(code, st.LineLength, st.CommentWidth, st.IndentWidth)
	}
	return finish(code), nil
}

var (
	callParenRe   = regexp.MustCompile(`([A-Za-z0-9_\]\)])\s+\(`)
	subscriptRe   = regexp.MustCompile(`\s+\[`)
	spaceCommaRe  = regexp.MustCompile(`\s+,`)
	commaSpaceRe  = regexp.MustCompile(`,\s*`)
	commaCloserRe = regexp.MustCompile(`,\s+([)\]}])`)
	colonSpaceRe  = regexp.MustCompile(`\s+:\s*`)
	multiSpaceRe  = regexp.MustCompile(`\s{2,}`)
)

// walrusGuard temporarily hides ':=' from the colon regex.
const walrusGuard = "\x00="

// fixPetPeeves applies the call-paren, subscript, comma, and colon
// whitespace rules line by line, then collapses interior space runs.
// Leading indentation is preserved.
func fixPetPeeves(s string) string {
	lines := splitLines(s)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.ReplaceAll(line, ":=", walrusGuard)
		line = callParenRe.ReplaceAllString(line, "$1(")
		line = subscriptRe.ReplaceAllString(line, "[")
		line = spaceCommaRe.ReplaceAllString(line, ",")
		line = commaSpaceRe.ReplaceAllString(line, ", ")
		line = commaCloserRe.ReplaceAllString(line, ",$1")
		line = colonSpaceRe.ReplaceAllString(line, ": ")
		line = strings.ReplaceAll(line, walrusGuard, ":=")
		prefix := line[:leadingSpaces(line)]
		rest := multiSpaceRe.ReplaceAllString(line[len(prefix):], " ")
		out = append(out, prefix+rest)
	}
	return strings.Join(out, "\n")
}

// lexLine tokenizes one line in isolation. ok is false when lexing hit
// an error (an incomplete fragment), in which case callers fall back to
// a conservative path for that line.
func lexLine(line string) ([]token.Token, bool) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<line>", []byte(line))
	lx := lexer.New(fs.Get(id), lexer.Options{})
	toks := lx.Tokens()
	return toks, !lx.Failed()
}

// splitInlineComment separates a line into code and trailing comment
// using the token stream, so '#' inside string literals is not
// mistaken for a comment. The second return is the comment text
// including the leading '#', empty when there is none.
func splitInlineComment(line string) (string, string, bool) {
	toks, ok := lexLine(line)
	if !ok {
		return line, "", false
	}
	for _, t := range toks {
		if t.Kind == token.Comment {
			return line[:t.Span.Start], t.Text, true
		}
	}
	return line, "", true
}
