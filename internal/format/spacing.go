package format

import (
	"regexp"
	"strings"

	"pyfmt/internal/token"
)

// fallbackOpRe is the conservative approximation used when a line does
// not tokenize (an incomplete fragment, say an unterminated string).
// Longest alternatives first: Go's regexp takes the leftmost match.
var fallbackOpRe = regexp.MustCompile(`\s*(\*\*=?|//=?|<<=?|>>=?|[+\-*/%]=|==|!=|<=|>=|[+\-*/%]|=|<|>)\s*`)

// fixOperatorSpacing surrounds binary, comparison, compound-assignment,
// and keyword boolean operators with exactly one space each side. A
// bare '=' inside a bracket pair is a keyword argument and stays
// unspaced; the walrus operator is left alone entirely.
func fixOperatorSpacing(s string) string {
	lines := splitLines(s)
	for i, line := range lines {
		lines[i] = spaceOperatorsInLine(line)
	}
	return strings.Join(lines, "\n")
}

func spaceOperatorsInLine(line string) string {
	if strings.TrimSpace(line) == "" || strings.HasPrefix(lstrip(line), "#") {
		return rstrip(line)
	}
	toks, ok := lexLine(line)
	if !ok {
		return fallbackSpaceOperators(line)
	}

	buf := make([]byte, 0, len(line)+16)
	trimTail := func() {
		for len(buf) > 0 && buf[len(buf)-1] == ' ' {
			buf = buf[:len(buf)-1]
		}
	}

	prevEnd := uint32(0)
	depth := 0
	comment := ""
	swallow := false

	for _, t := range toks {
		if t.Kind == token.EOF {
			break
		}
		gap := line[prevEnd:t.Span.Start]
		if swallow {
			gap = strings.TrimLeft(gap, " ")
			swallow = false
		}
		buf = append(buf, gap...)
		prevEnd = t.Span.End

		switch {
		case t.Kind == token.Comment:
			comment = t.Text
		case t.IsOpenBracket():
			depth++
			buf = append(buf, t.Text...)
		case t.IsCloseBracket():
			if depth > 0 {
				depth--
			}
			buf = append(buf, t.Text...)
		case t.Kind == token.Assign && depth > 0:
			// keyword argument or parameter default
			trimTail()
			buf = append(buf, '=')
			swallow = true
		case t.IsBinaryOp() || t.IsSpacedKeywordOp():
			buf = append(buf, ' ')
			buf = append(buf, t.Text...)
			buf = append(buf, ' ')
		default:
			buf = append(buf, t.Text...)
		}
	}

	result := string(buf)
	prefix := result[:leadingSpaces(result)]
	result = prefix + multiSpaceRe.ReplaceAllString(result[len(prefix):], " ")
	if comment != "" {
		result = rstrip(result) + "  # " + strings.TrimSpace(strings.TrimPrefix(comment, "#"))
	}
	return rstrip(result)
}

func fallbackSpaceOperators(line string) string {
	code, comment := line, ""
	if i := strings.Index(line, "#"); i >= 0 {
		code, comment = line[:i], line[i+1:]
	}
	code = strings.ReplaceAll(code, ":=", walrusGuard)
	code = fallbackOpRe.ReplaceAllString(code, " $1 ")
	code = strings.ReplaceAll(code, walrusGuard, ":=")
	prefix := code[:leadingSpaces(code)]
	code = prefix + multiSpaceRe.ReplaceAllString(code[len(prefix):], " ")
	if comment != "" {
		code = rstrip(code) + "  # " + strings.TrimSpace(comment)
	}
	return rstrip(code)
}

// fixKeywordEquals collapses any remaining spacing around the '=' of
// keyword arguments and parameter defaults. Lines that fail to
// tokenize are left unchanged.
func fixKeywordEquals(s string) string {
	lines := splitLines(s)
	for i, line := range lines {
		lines[i] = collapseKwargEquals(line)
	}
	return strings.Join(lines, "\n")
}

func collapseKwargEquals(line string) string {
	if strings.TrimSpace(line) == "" || strings.HasPrefix(lstrip(line), "#") {
		return rstrip(line)
	}
	toks, ok := lexLine(line)
	if !ok {
		return rstrip(line)
	}

	buf := make([]byte, 0, len(line))
	prevEnd := uint32(0)
	depth := 0
	comment := ""
	swallow := false

	for _, t := range toks {
		if t.Kind == token.EOF {
			break
		}
		gap := line[prevEnd:t.Span.Start]
		if swallow {
			gap = strings.TrimLeft(gap, " ")
			swallow = false
		}
		buf = append(buf, gap...)
		prevEnd = t.Span.End

		switch {
		case t.Kind == token.Comment:
			comment = t.Text
		case t.IsOpenBracket():
			depth++
			buf = append(buf, t.Text...)
		case t.IsCloseBracket():
			if depth > 0 {
				depth--
			}
			buf = append(buf, t.Text...)
		case t.Kind == token.Assign && depth > 0:
			for len(buf) > 0 && buf[len(buf)-1] == ' ' {
				buf = buf[:len(buf)-1]
			}
			buf = append(buf, '=')
			swallow = true
		default:
			buf = append(buf, t.Text...)
		}
	}

	result := string(buf)
	if comment != "" {
		result = rstrip(result) + "  # " + strings.TrimSpace(strings.TrimPrefix(comment, "#"))
	}
	return rstrip(result)
}
