package format

import (
	"strings"

	"pyfmt/internal/token"
)

// wrapLongLines breaks lines over the width budget at commas inside
// bracket pairs, greedily at the rightmost break still in budget, with
// continuations hanging one extra indent width. Overlong standalone
// comments reflow as prose instead; a line with no viable break stays
// as it is.
func wrapLongLines(s string, width, commentWidth, spaces int) string {
	lines := splitLines(s)
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		if len(line) <= width {
			out = append(out, line)
			continue
		}

		stripped := lstrip(line)
		if strings.HasPrefix(stripped, "#") {
			indent := line[:len(line)-len(stripped)]
			text := strings.TrimLeft(strings.TrimPrefix(stripped, "#"), " ")
			for _, w := range wrapText(text, commentWidth) {
				out = append(out, rstrip(indent+"# "+w))
			}
			continue
		}

		if !strings.ContainsAny(line, "([{") {
			out = append(out, line)
			continue
		}
		toks, ok := lexLine(line)
		if !ok {
			out = append(out, line)
			continue
		}

		var breaks []int
		depth := 0
		for _, t := range toks {
			switch {
			case t.IsOpenBracket():
				depth++
			case t.IsCloseBracket():
				if depth > 0 {
					depth--
				}
			case t.Kind == token.Comma && depth > 0:
				breaks = append(breaks, int(t.Span.End))
			}
		}
		if len(breaks) == 0 {
			out = append(out, line)
			continue
		}
		out = append(out, wrapAtBreaks(line, breaks, width, spaces)...)
	}
	return strings.Join(out, "\n")
}

// wrapAtBreaks splits line at the given absolute byte offsets (comma
// ends), rightmost-in-budget first, repeating on the remainder.
func wrapAtBreaks(line string, breaks []int, width, spaces int) []string {
	indent := line[:leadingSpaces(line)]
	hang := indent + strings.Repeat(" ", spaces)

	current := strings.TrimSpace(line)
	consumed := len(line) - len(lstrip(line)) // offset of current within line
	head := indent
	var pieces []string

	for len(head)+len(current) > width {
		limit := width - len(head)
		best := -1
		for _, b := range breaks {
			rel := b - consumed
			if rel > 0 && rel < limit && rel < len(current) && b > best {
				best = b
			}
		}
		if best < 0 {
			break
		}
		rel := best - consumed
		first := strings.TrimRight(current[:rel], " ")
		rest := current[rel:]
		trimmed := strings.TrimLeft(rest, " ")
		pieces = append(pieces, rstrip(head+first))
		consumed = best + (len(rest) - len(trimmed))
		current = trimmed
		head = hang
	}
	if current != "" {
		pieces = append(pieces, rstrip(head+current))
	}
	return pieces
}
