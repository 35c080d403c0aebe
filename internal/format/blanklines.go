package format

import (
	"regexp"
	"strings"
)

var methodDefRe = regexp.MustCompile(`^\s+def\s+\w`)

// enforceBlankLines puts exactly two blank lines before a top-level
// def/class (decorators travel with their definition) and one blank
// line before an indented method definition, then trims trailing
// blank lines.
func enforceBlankLines(s string) string {
	lines := splitLines(s)
	out := make([]string, 0, len(lines))

	isTopLevelDef := func(idx int) bool {
		if idx >= len(lines) {
			return false
		}
		line := lines[idx]
		if strings.HasPrefix(lstrip(line), "@") {
			j := idx + 1
			for j < len(lines) && strings.TrimSpace(lines[j]) == "" {
				j++
			}
			if j < len(lines) {
				return strings.HasPrefix(lines[j], "def ") || strings.HasPrefix(lines[j], "class ")
			}
			return false
		}
		return strings.HasPrefix(line, "def ") || strings.HasPrefix(line, "class ")
	}

	i := 0
	for i < len(lines) {
		line := lines[i]
		if isTopLevelDef(i) {
			for len(out) > 0 && strings.TrimSpace(out[len(out)-1]) == "" {
				out = out[:len(out)-1]
			}
			if len(out) > 0 {
				out = append(out, "", "")
			}
			for i < len(lines) && strings.HasPrefix(lstrip(lines[i]), "@") {
				out = append(out, rstrip(lines[i]))
				i++
			}
			if i < len(lines) {
				out = append(out, rstrip(lines[i]))
				i++
			}
			continue
		}
		if methodDefRe.MatchString(line) && len(out) > 0 && strings.TrimSpace(out[len(out)-1]) != "" {
			out = append(out, "")
		}
		out = append(out, rstrip(line))
		i++
	}

	for len(out) > 0 && strings.TrimSpace(out[len(out)-1]) == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
