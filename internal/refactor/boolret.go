package refactor

import (
	"strings"

	"pyfmt/internal/ast"
	"pyfmt/internal/edit"
	"pyfmt/internal/parser"
	"pyfmt/internal/token"
)

// SimplifyBooleanReturns collapses
//
//	if cond:
//	    return True
//	else:
//	    return False
//
// into `return bool(cond)`, and the inverted ladder into
// `return not bool(cond)`. Only the exact two-branch shape with
// literal returns qualifies; anything else is left alone.
func SimplifyBooleanReturns(text string) (string, bool, error) {
	res, serr := parser.Check(text)
	if serr != nil {
		return text, false, serr
	}

	lines := strings.Split(text, "\n")
	var edits []edit.Edit

	res.Module.Walk(func(parent *ast.Node) bool {
		for i := 0; i+1 < len(parent.Children); i++ {
			ifNode := parent.Children[i]
			elseNode := parent.Children[i+1]
			if ifNode.Kind != ast.If || elseNode.Kind != ast.Else {
				continue
			}
			ifVal, ok := literalReturn(res, ifNode)
			if !ok {
				continue
			}
			elseVal, ok := literalReturn(res, elseNode)
			if !ok || ifVal == elseVal {
				continue
			}

			cond, ok := headerCondition(text, res, ifNode)
			if !ok {
				continue
			}

			raw := lines[ifNode.StartLine-1]
			indent := raw[:len(raw)-len(strings.TrimLeft(raw, " \t"))]
			repl := indent + "return bool(" + cond + ")"
			if !ifVal {
				repl = indent + "return not bool(" + cond + ")"
			}
			edits = append(edits, edit.Replace(ifNode.StartLine, elseNode.EndLine, repl))
		}
		return true
	})

	out, err := edit.ApplyToText(text, edits)
	if err == edit.ErrNoEdits {
		return text, false, nil
	}
	if err != nil {
		return text, false, err
	}
	return out, true, nil
}

// literalReturn reports the value of a suite consisting of exactly one
// `return True` or `return False` statement.
func literalReturn(res *parser.Result, n *ast.Node) (bool, bool) {
	if len(n.Children) != 1 {
		return false, false
	}
	child := n.Children[0]
	if child.Kind != ast.Return || len(child.Children) != 0 {
		return false, false
	}
	toks := res.Lines[child.HeaderIdx].Tokens
	if len(toks) != 2 {
		return false, false
	}
	switch toks[1].Kind {
	case token.KwTrue:
		return true, true
	case token.KwFalse:
		return false, true
	}
	return false, false
}

// headerCondition extracts the test of a single-line `if cond:` header.
func headerCondition(text string, res *parser.Result, n *ast.Node) (string, bool) {
	ll := res.Lines[n.HeaderIdx]
	if ll.StartLine != ll.EndLine {
		return "", false
	}
	toks := ll.Tokens
	colon := -1
	depth := 0
	for i, t := range toks {
		switch {
		case t.IsOpenBracket():
			depth++
		case t.IsCloseBracket():
			if depth > 0 {
				depth--
			}
		case t.Kind == token.Colon && depth == 0:
			colon = i
		case t.Kind == token.KwLambda && depth == 0:
			return "", false
		}
	}
	if colon < 2 || colon != len(toks)-1 {
		return "", false
	}
	cond := strings.TrimSpace(text[toks[1].Span.Start:toks[colon].Span.Start])
	if cond == "" {
		return "", false
	}
	return cond, true
}
