package imports

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"pyfmt/internal/ast"
	"pyfmt/internal/parser"
)

// Record is one top-level import statement with its classification and
// sort key. Text may span multiple physical lines; the statement moves
// as a whole.
type Record struct {
	Group Group
	Text  string
	Key   string
}

var (
	importRootRe = regexp.MustCompile(`^\s*import\s+([A-Za-z_][A-Za-z0-9_.]*)`)
	fromRootRe   = regexp.MustCompile(`^\s*from\s+([.A-Za-z_][A-Za-z0-9_.]*)\s+import\s`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// rootName extracts the module name an import statement binds: the
// dotted name after `import`, or the source module of a `from` form.
func rootName(line string) string {
	if m := importRootRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	if m := fromRootRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return ""
}

// sortKey collapses whitespace; case folding happens in the collator.
func sortKey(line string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(line), " ")
}

// Organize regroups the contiguous top-level import region into
// stdlib / third-party / local blocks, each sorted case-insensitively.
// The module docstring and `__future__` imports anchor the region and
// never move. Parse-gated: broken input comes back untouched with the
// syntax error. Idempotent on its own output.
func Organize(text string, c *Classifier) (string, error) {
	res, serr := parser.Check(text)
	if serr != nil {
		return text, serr
	}

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	children := res.Module.Children

	// The insertion anchor: after the docstring and the last
	// `__future__` import, whichever is later.
	afterLine := 0
	if len(children) > 0 && children[0].Kind == ast.ExprStmt {
		afterLine = children[0].EndLine
	}
	for _, n := range children {
		if isFutureImport(res, n) && n.EndLine > afterLine {
			afterLine = n.EndLine
		}
	}

	// Import statements by start line, future imports excluded.
	spans := make(map[int]*ast.Node)
	for _, n := range children {
		if (n.Kind == ast.Import || n.Kind == ast.FromImport) && !isFutureImport(res, n) {
			spans[n.StartLine] = n
		}
	}

	blockStart := 0
	for _, n := range children {
		if spans[n.StartLine] == n && n.StartLine > afterLine {
			blockStart = n.StartLine
			break
		}
	}
	if blockStart == 0 {
		return text, nil
	}

	// Forward scan: the region is import statements plus the blank and
	// comment lines between them. Comments inside the region do not
	// survive the rewrite.
	var records []Record
	i := blockStart
	blockEnd := blockStart // first line after the region, 1-based
	for i <= len(lines) {
		if n, ok := spans[i]; ok {
			stmt := strings.Join(rstripAll(lines[n.StartLine-1:n.EndLine]), "\n")
			first := lines[n.StartLine-1]
			root := rootName(first)
			group := GroupLocal
			if root != "" {
				group = c.Classify(root)
			}
			records = append(records, Record{Group: group, Text: stmt, Key: sortKey(first)})
			i = n.EndLine + 1
			blockEnd = i
			continue
		}
		s := strings.TrimSpace(lines[i-1])
		if s == "" || strings.HasPrefix(s, "#") {
			i++
			continue
		}
		break
	}
	blockEnd = i
	if len(records) == 0 {
		return text, nil
	}

	coll := collate.New(language.Und, collate.IgnoreCase)
	byGroup := func(g Group) []Record {
		var out []Record
		for _, r := range records {
			if r.Group == g {
				out = append(out, r)
			}
		}
		sort.SliceStable(out, func(a, b int) bool {
			return coll.CompareString(out[a].Key, out[b].Key) < 0
		})
		return out
	}

	var block []string
	for _, g := range []Group{GroupStdlib, GroupThirdParty, GroupLocal} {
		group := byGroup(g)
		if len(group) == 0 {
			continue
		}
		if len(block) > 0 {
			block = append(block, "")
		}
		for _, r := range group {
			block = append(block, strings.Split(r.Text, "\n")...)
		}
	}

	header := lines[:afterLine]
	var tail []string
	if blockEnd-1 < len(lines) {
		tail = lines[blockEnd-1:]
	}

	rebuilt := make([]string, 0, len(header)+len(block)+len(tail)+2)
	rebuilt = append(rebuilt, header...)
	if len(rebuilt) > 0 && strings.TrimSpace(rebuilt[len(rebuilt)-1]) != "" {
		rebuilt = append(rebuilt, "")
	}
	rebuilt = append(rebuilt, block...)
	if len(tail) > 0 && strings.TrimSpace(tail[0]) != "" {
		rebuilt = append(rebuilt, "")
	}
	rebuilt = append(rebuilt, tail...)

	out := strings.Join(rstripAll(rebuilt), "\n")
	if strings.HasSuffix(text, "\n") && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out, nil
}

func isFutureImport(res *parser.Result, n *ast.Node) bool {
	if n.Kind != ast.FromImport || n.HeaderIdx < 0 {
		return false
	}
	toks := res.Lines[n.HeaderIdx].Tokens
	return len(toks) > 1 && toks[1].Text == "__future__"
}

func rstripAll(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimRight(l, " \t")
	}
	return out
}
