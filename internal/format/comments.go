package format

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// reflowComments rewraps standalone comment lines to the configured
// comment width and pulls inline comments to exactly two spaces before
// the hash and one after. Shebang and encoding-declaration comments
// pass through verbatim.
func reflowComments(s string, width int) string {
	lines := splitLines(s)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		stripped := lstrip(line)
		indent := line[:len(line)-len(stripped)]

		switch {
		case strings.HasPrefix(stripped, "#!"),
			strings.HasPrefix(stripped, "# -*-"),
			strings.HasPrefix(stripped, "# coding"):
			out = append(out, rstrip(line))

		case strings.HasPrefix(stripped, "#"):
			content := strings.TrimLeft(stripped[1:], " ")
			for _, w := range wrapText(content, width) {
				if w == "" {
					out = append(out, rstrip(indent+"#"))
				} else {
					out = append(out, rstrip(indent+"# "+w))
				}
			}

		default:
			code, comment, ok := splitInlineComment(line)
			if ok && comment != "" {
				content := strings.TrimSpace(strings.TrimPrefix(comment, "#"))
				out = append(out, rstrip(rstrip(code)+"  # "+content))
			} else {
				out = append(out, rstrip(line))
			}
		}
	}
	return strings.Join(out, "\n")
}

// wrapText is greedy prose wrapping: words never break, a single word
// longer than the width gets its own line. Empty text yields one empty
// line.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	cur := words[0]
	for _, w := range words[1:] {
		if runewidth.StringWidth(cur)+1+runewidth.StringWidth(w) <= width {
			cur += " " + w
		} else {
			lines = append(lines, cur)
			cur = w
		}
	}
	return append(lines, cur)
}
