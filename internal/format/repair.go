package format

import (
	"regexp"
	"strings"
)

// control keywords that open a colon-terminated block worth tracking.
var controlKeywords = map[string]bool{
	"if": true, "elif": true, "else": true, "for": true, "while": true,
	"try": true, "except": true, "finally": true, "with": true,
	"def": true, "class": true,
}

// bare flow statements that never belong at column zero inside a block.
var flowKeywords = map[string]bool{
	"return": true, "break": true, "continue": true, "raise": true, "pass": true,
}

var leadingWordRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*`)

type repairFrame struct {
	keyword string
	indent  int
}

// RepairBlocks is the best-effort structural pass that runs before
// reindentation. It realigns continuation clauses under their
// controlling opener, pulls column-zero flow statements back into the
// nearest open block, and pushes mis-dedented methods under their
// class. It never requires valid syntax, never inserts or deletes
// lines, and leaves blank lines alone.
func RepairBlocks(s string, spaces int) string {
	lines := splitLines(s)
	if len(lines) == 0 {
		return s
	}

	var stack []repairFrame

	for idx, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		indent := leadingSpaces(line)

		for len(stack) > 0 && indent < stack[len(stack)-1].indent {
			stack = stack[:len(stack)-1]
		}

		word := leadingWordRe.FindString(stripped)

		// Continuation clauses move to their opener's column when they
		// sit too shallow or off-grid.
		switch word {
		case "elif", "else", "except", "finally":
			target := -1
			for i := len(stack) - 1; i >= 0; i-- {
				kw := stack[i].keyword
				if (word == "elif" || word == "else") && (kw == "if" || kw == "elif") {
					target = stack[i].indent
					break
				}
				if (word == "except" || word == "finally") && (kw == "try" || kw == "except") {
					target = stack[i].indent
					break
				}
			}
			if target >= 0 && indent != target {
				if indent < target || indent%spaces != 0 {
					lines[idx] = strings.Repeat(" ", target) + stripped
					indent = target
				}
			}
		}

		// A return/break/etc at column zero while a block is open
		// belongs one level under the nearest block-like opener.
		if flowKeywords[word] && indent == 0 && len(stack) > 0 {
			for i := len(stack) - 1; i >= 0; i-- {
				switch stack[i].keyword {
				case "def", "for", "while", "if", "try", "with", "class":
					target := stack[i].indent + spaces
					if target > 0 {
						lines[idx] = strings.Repeat(" ", target) + stripped
						indent = target
					}
				default:
					continue
				}
				break
			}
		}

		// A def at or above its class's column is a mis-dedented method.
		if word == "def" && len(stack) > 0 {
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i].keyword != "class" {
					continue
				}
				if indent <= stack[i].indent {
					target := stack[i].indent + spaces
					lines[idx] = strings.Repeat(" ", target) + stripped
					indent = target
				}
				break
			}
		}

		if strings.HasSuffix(stripped, ":") && controlKeywords[word] {
			stack = append(stack, repairFrame{keyword: word, indent: indent})
		}
	}

	return strings.Join(lines, "\n")
}
