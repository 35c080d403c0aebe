package format

import (
	"strings"
)

// Normalize rewrites CRLF and lone CR line endings to LF.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// Detab expands tabs to spaces with tab stops every width columns.
func Detab(s string, width int) string {
	if width <= 0 {
		width = 8
	}
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 16)
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			n := width - col%width
			for i := 0; i < n; i++ {
				b.WriteByte(' ')
			}
			col += n
		case '\n':
			b.WriteByte('\n')
			col = 0
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}

// StripTrailingWhitespace removes trailing spaces and tabs from every
// line.
func StripTrailingWhitespace(s string) string {
	lines := splitLines(s)
	for i, line := range lines {
		lines[i] = rstrip(line)
	}
	return strings.Join(lines, "\n")
}

// finish is the terminal step shared by Indent and Style: per-line
// rstrip, trim trailing blank lines, end with exactly one newline.
func finish(s string) string {
	return strings.TrimRight(StripTrailingWhitespace(s), "\n") + "\n"
}

// splitLines splits on LF, dropping the empty remainder a trailing
// newline leaves behind. An empty string yields no lines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func rstrip(s string) string {
	return strings.TrimRight(s, " \t")
}

func lstrip(s string) string {
	return strings.TrimLeft(s, " \t")
}

// leadingSpaces counts leading space characters only; tabs are assumed
// already expanded.
func leadingSpaces(s string) int {
	return len(s) - len(strings.TrimLeft(s, " "))
}
