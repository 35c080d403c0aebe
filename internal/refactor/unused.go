// Package refactor holds the parse-gated rewrites that change code
// rather than layout: dropping unused import bindings, collapsing
// boolean-literal return ladders, and migrating old-style string
// interpolation to f-strings. Every entry point leaves the buffer
// untouched when the input does not parse or when the rewrite does not
// clearly apply.
package refactor

import (
	"strings"

	"pyfmt/internal/ast"
	"pyfmt/internal/edit"
	"pyfmt/internal/parser"
	"pyfmt/internal/token"
)

// importBinding is one name an import statement introduces, with the
// clause text that produces it.
type importBinding struct {
	name   string
	clause string
}

// RemoveUnusedImports drops import bindings that no other statement
// references. Usage is over-approximated from the token stream, so a
// binding is removed only when its name appears nowhere outside import
// statements; dynamic access through getattr or __all__ strings keeps
// nothing alive and such modules should not rely on this rewrite.
// `from __future__` imports, star imports, and imports spanning more
// than one physical line are never touched.
func RemoveUnusedImports(text string) (string, bool, error) {
	res, serr := parser.Check(text)
	if serr != nil {
		return text, false, serr
	}

	type site struct {
		node *ast.Node
		sole bool // only statement of its suite; deletion needs a pass
	}
	var imports []site
	importLines := map[int]bool{}
	res.Module.Walk(func(parent *ast.Node) bool {
		for _, c := range parent.Children {
			if c.Kind == ast.Import || c.Kind == ast.FromImport {
				sole := len(parent.Children) == 1 && parent.Kind != ast.Module
				imports = append(imports, site{node: c, sole: sole})
				importLines[c.HeaderIdx] = true
			}
		}
		return true
	})
	if len(imports) == 0 {
		return text, false, nil
	}

	used := usedNames(res, importLines)

	lines := strings.Split(text, "\n")
	offsets := lineOffsets(lines)

	var edits []edit.Edit
	for _, s := range imports {
		n := s.node
		ll := res.Lines[n.HeaderIdx]
		if ll.StartLine != ll.EndLine {
			continue
		}
		bindings, rebuild := importClauses(text, ll)
		if bindings == nil {
			continue
		}

		var kept []string
		removed := false
		for _, b := range bindings {
			if used[b.name] {
				kept = append(kept, b.clause)
			} else {
				removed = true
			}
		}
		if !removed {
			continue
		}

		raw := lines[ll.StartLine-1]
		indent := raw[:len(raw)-len(strings.TrimLeft(raw, " \t"))]

		if len(kept) == 0 {
			if s.sole {
				edits = append(edits, edit.Replace(ll.StartLine, ll.StartLine, indent+"pass"))
			} else {
				edits = append(edits, edit.Delete(ll.StartLine, ll.StartLine))
			}
			continue
		}
		stmt := indent + rebuild(kept)
		last := ll.Tokens[len(ll.Tokens)-1]
		if tail := strings.TrimSpace(raw[int(last.Span.End)-offsets[ll.StartLine-1]:]); tail != "" {
			stmt += "  " + tail
		}
		edits = append(edits, edit.Replace(ll.StartLine, ll.StartLine, stmt))
	}

	out, err := edit.ApplyToText(text, edits)
	if err == edit.ErrNoEdits {
		return text, false, nil
	}
	if err != nil {
		return text, false, err
	}
	return out, true, nil
}

// usedNames collects every identifier that could be a reference,
// skipping names in binding position (after def, class, or as) and
// attribute selectors after a dot.
func usedNames(res *parser.Result, importLines map[int]bool) map[string]bool {
	used := map[string]bool{}
	for i, ll := range res.Lines {
		if importLines[i] {
			continue
		}
		for j, t := range ll.Tokens {
			if t.Kind != token.Ident {
				continue
			}
			if j > 0 {
				switch ll.Tokens[j-1].Kind {
				case token.Dot, token.KwDef, token.KwClass, token.KwAs:
					continue
				}
			}
			used[t.Text] = true
		}
	}
	return used
}

// importClauses splits a single-line import statement into bindings and
// returns a rebuild function for the surviving clauses. A nil bindings
// slice means the statement must be left alone.
func importClauses(text string, ll parser.LogicalLine) ([]importBinding, func([]string) string) {
	toks := ll.Tokens
	switch toks[0].Kind {
	case token.KwImport:
		items := splitItems(toks[1:])
		var bindings []importBinding
		for _, item := range items {
			b, ok := plainBinding(text, item)
			if !ok {
				return nil, nil
			}
			bindings = append(bindings, b)
		}
		return bindings, func(kept []string) string {
			return "import " + strings.Join(kept, ", ")
		}

	case token.KwFrom:
		importIdx := -1
		for i, t := range toks {
			if t.Kind == token.KwImport {
				importIdx = i
				break
			}
		}
		if importIdx < 2 {
			return nil, nil
		}
		module := text[toks[1].Span.Start:toks[importIdx-1].Span.End]
		if strings.HasPrefix(module, "__future__") {
			return nil, nil
		}
		rest := toks[importIdx+1:]
		if len(rest) > 0 && rest[0].Kind == token.LParen {
			if rest[len(rest)-1].Kind != token.RParen {
				return nil, nil
			}
			rest = rest[1 : len(rest)-1]
		}
		items := splitItems(rest)
		var bindings []importBinding
		for _, item := range items {
			b, ok := fromBinding(text, item)
			if !ok {
				return nil, nil
			}
			bindings = append(bindings, b)
		}
		return bindings, func(kept []string) string {
			return "from " + module + " import " + strings.Join(kept, ", ")
		}
	}
	return nil, nil
}

// splitItems cuts a token run at commas. Empty runs from a trailing
// comma are dropped.
func splitItems(toks []token.Token) [][]token.Token {
	var items [][]token.Token
	start := 0
	for i, t := range toks {
		if t.Kind == token.Comma {
			if i > start {
				items = append(items, toks[start:i])
			}
			start = i + 1
		}
	}
	if start < len(toks) {
		items = append(items, toks[start:])
	}
	return items
}

// plainBinding handles one `import a.b.c as d` clause: the binding is
// the alias, or the first component of the dotted path.
func plainBinding(text string, item []token.Token) (importBinding, bool) {
	if len(item) == 0 || item[0].Kind != token.Ident {
		return importBinding{}, false
	}
	clause := text[item[0].Span.Start:item[len(item)-1].Span.End]
	if n := len(item); n >= 3 && item[n-2].Kind == token.KwAs && item[n-1].Kind == token.Ident {
		return importBinding{name: item[n-1].Text, clause: clause}, true
	}
	for _, t := range item {
		if t.Kind != token.Ident && t.Kind != token.Dot {
			return importBinding{}, false
		}
	}
	return importBinding{name: item[0].Text, clause: clause}, true
}

// fromBinding handles one `name as alias` item of a from-import. A star
// import aborts the whole statement.
func fromBinding(text string, item []token.Token) (importBinding, bool) {
	if len(item) == 1 && item[0].Kind == token.Ident {
		return importBinding{name: item[0].Text, clause: item[0].Text}, true
	}
	if len(item) == 3 && item[0].Kind == token.Ident &&
		item[1].Kind == token.KwAs && item[2].Kind == token.Ident {
		clause := text[item[0].Span.Start:item[2].Span.End]
		return importBinding{name: item[2].Text, clause: clause}, true
	}
	return importBinding{}, false
}

// lineOffsets returns the byte offset each physical line starts at.
func lineOffsets(lines []string) []int {
	offs := make([]int, len(lines))
	off := 0
	for i, l := range lines {
		offs[i] = off
		off += len(l) + 1
	}
	return offs
}
