package parser

import (
	"fmt"

	"pyfmt/internal/ast"
	"pyfmt/internal/diag"
	"pyfmt/internal/source"
	"pyfmt/internal/token"
)

// frame is one open suite on the indentation stack.
type frame struct {
	indent int
	parent *ast.Node
}

// clauseFollows reports whether a continuation clause may appear right
// after a sibling of the given kind. Lenient on purpose: the gate must
// never reject valid code, so only clearly dangling clauses fail.
func clauseFollows(clause, prev ast.Kind) bool {
	switch clause {
	case ast.Elif:
		return prev == ast.If || prev == ast.Elif
	case ast.Else:
		switch prev {
		case ast.If, ast.Elif, ast.For, ast.While, ast.Try, ast.Except:
			return true
		}
	case ast.Except:
		return prev == ast.Try || prev == ast.Except
	case ast.Finally:
		return prev == ast.Try || prev == ast.Except || prev == ast.Else
	}
	return false
}

// headerColon finds the last depth-0 colon of a statement header.
// Returns -1 when the header has none.
func headerColon(toks []token.Token) int {
	depth := 0
	last := -1
	for i, t := range toks {
		switch {
		case t.IsOpenBracket():
			depth++
		case t.IsCloseBracket():
			if depth > 0 {
				depth--
			}
		case t.Kind == token.Colon && depth == 0:
			last = i
		case t.Kind == token.KwLambda && depth == 0:
			// a lambda body colon at depth 0 would shadow the header
			// colon; treat everything after it as opaque
			return last
		}
	}
	return last
}

func headerSpan(ll LogicalLine) source.Span {
	return ll.Tokens[0].Span.Cover(ll.Tokens[len(ll.Tokens)-1].Span)
}

func firstWord(ll LogicalLine) string {
	t := ll.Tokens[0]
	if t.Kind == token.KwAsync && len(ll.Tokens) > 1 {
		return t.Text + " " + ll.Tokens[1].Text
	}
	return t.Text
}

// buildOutline folds the logical lines into a statement tree using an
// indentation stack, reporting indent, block, and clause-attachment
// problems as it goes.
func buildOutline(fs *source.FileSet, file *source.File, lines []LogicalLine, rep diag.Reporter) *ast.Node {
	lineCount := len(file.LineIdx) + 1
	module := &ast.Node{
		Kind:      ast.Module,
		Span:      source.Span{File: file.ID, Start: 0, End: uint32(len(file.Content))},
		StartLine: 1,
		EndLine:   lineCount,
		Indent:    0,
		HeaderIdx: -1,
	}
	if len(lines) == 0 {
		return module
	}

	frames := []frame{{indent: 0, parent: module}}
	top := func() *frame { return &frames[len(frames)-1] }

	var (
		pending     *ast.Node // compound waiting for its suite
		pendingWord string
		suiteWanted bool
	)

	for i, ll := range lines {
		kind := classify(ll.Tokens)
		node := &ast.Node{
			Kind:      kind,
			Span:      headerSpan(ll),
			StartLine: ll.StartLine,
			EndLine:   ll.EndLine,
			Indent:    ll.Indent,
			HeaderIdx: i,
		}

		suiteNext := false
		if kind.IsCompound() {
			colon := headerColon(ll.Tokens)
			switch {
			case colon < 0:
				rep.Report(diag.SynUnexpectedToken, diag.SevError, node.Span,
					fmt.Sprintf("expected ':' after '%s' header", firstWord(ll)), nil)
			case colon == len(ll.Tokens)-1:
				suiteNext = true
			}
			// a colon followed by more tokens is an inline suite;
			// nothing to track
		}

		if suiteWanted {
			if ll.Indent > top().indent {
				frames = append(frames, frame{indent: ll.Indent, parent: pending})
			} else {
				rep.Report(diag.SynExpectedBlock, diag.SevError, pending.Span,
					fmt.Sprintf("expected an indented block after '%s'", pendingWord), nil)
			}
			suiteWanted = false
			pending = nil
		}

		popped := false
		for ll.Indent < top().indent {
			frames = frames[:len(frames)-1]
			popped = true
		}
		if ll.Indent > top().indent {
			if popped {
				rep.Report(diag.SynInconsistentDedent, diag.SevError, node.Span,
					"dedent does not match any outer indentation level", nil)
			} else {
				rep.Report(diag.SynUnexpectedIndent, diag.SevError, node.Span,
					"unexpected indent", nil)
			}
			// recover by attaching to the innermost open suite
		}

		parent := top().parent
		if kind.IsClause() {
			var prev *ast.Node
			if n := len(parent.Children); n > 0 {
				prev = parent.Children[n-1]
			}
			if prev == nil || !clauseFollows(kind, prev.Kind) {
				rep.Report(diag.SynDanglingContinuation, diag.SevError, node.Span,
					fmt.Sprintf("'%s' has no matching statement to continue", firstWord(ll)), nil)
			}
		}
		parent.Children = append(parent.Children, node)

		if suiteNext {
			pending = node
			pendingWord = firstWord(ll)
			suiteWanted = true
		}
	}

	if suiteWanted {
		rep.Report(diag.SynExpectedBlock, diag.SevError, pending.Span,
			fmt.Sprintf("expected an indented block after '%s'", pendingWord), nil)
	}

	finishEndLines(module)
	module.EndLine = lineCount
	return module
}

// finishEndLines extends every compound node's EndLine to cover its
// suite.
func finishEndLines(n *ast.Node) int {
	end := n.EndLine
	for _, c := range n.Children {
		if e := finishEndLines(c); e > end {
			end = e
		}
	}
	n.EndLine = end
	return end
}
