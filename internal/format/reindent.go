package format

import (
	"regexp"
	"strings"
)

var (
	trailingCommentRe = regexp.MustCompile(`#.*$`)
	clauseStartRe     = regexp.MustCompile(`^(elif|else|except|finally)\b`)
	closerStartRe     = regexp.MustCompile(`^[)\]}]`)
)

// Reindent re-derives consistent indentation from the input's own
// column structure: a logical level counter, a stack of the original
// indent columns, bracket balance, and continuation-backslash
// tracking. It is deliberately grammar-free so it can run on
// unparsable text. Known accepted limitation: the triple-delimiter
// check cannot tell a real multi-line string opener from the same
// three characters inside an unrelated single-line string.
func Reindent(s string, spaces int) string {
	code := strings.Trim(s, "\n")
	lines := splitLines(code)
	out := make([]string, 0, len(lines))

	level := 0
	indentStack := []int{0}
	parenBalance := 0
	inTriple := false
	prevBackslash := false

	for _, line := range lines {
		original := line
		stripped := strings.TrimSpace(line)
		logic := strings.TrimSpace(trailingCommentRe.ReplaceAllString(stripped, ""))

		if logic == "" {
			out = append(out, "")
			prevBackslash = false
			continue
		}

		if strings.Contains(logic, `"""`) || strings.Contains(logic, "'''") {
			if strings.Count(logic, `"""`)%2 == 1 || strings.Count(logic, "'''")%2 == 1 {
				inTriple = !inTriple
			}
		}
		if inTriple {
			out = append(out, strings.Repeat(" ", level*spaces)+lstrip(original))
			prevBackslash = false
			continue
		}

		parenBalance += strings.Count(logic, "(") + strings.Count(logic, "[") + strings.Count(logic, "{")
		parenBalance -= strings.Count(logic, ")") + strings.Count(logic, "]") + strings.Count(logic, "}")

		if parenBalance == 0 && !prevBackslash {
			origIndent := leadingSpaces(original)
			switch top := indentStack[len(indentStack)-1]; {
			case origIndent > top:
				indentStack = append(indentStack, origIndent)
				level++
			case origIndent < top:
				for origIndent < indentStack[len(indentStack)-1] && len(indentStack) > 1 {
					indentStack = indentStack[:len(indentStack)-1]
					if level > 0 {
						level--
					}
				}
				// Irregular input: resynchronize the stack as uniform
				// multiples of the indent width.
				if origIndent != indentStack[len(indentStack)-1] {
					steps := origIndent / spaces
					if steps < 0 {
						steps = 0
					}
					indentStack = indentStack[:0]
					for i := 0; i <= steps; i++ {
						indentStack = append(indentStack, i*spaces)
					}
					level = steps
				}
			}
		}

		eff := level
		if clauseStartRe.MatchString(logic) && eff > 0 {
			eff--
		}

		visual := eff * spaces
		if parenBalance > 0 || prevBackslash {
			visual = (eff + 1) * spaces
			if closerStartRe.MatchString(logic) && parenBalance == 0 {
				visual = eff * spaces
			}
		}

		out = append(out, strings.Repeat(" ", visual)+lstrip(original))
		prevBackslash = strings.HasSuffix(stripped, `\`)
	}

	return strings.Join(out, "\n")
}
