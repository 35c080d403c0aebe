// Package ast defines the tagged-variant statement tree the parse-gated
// transforms walk. A node is a kind tag plus children and a source
// span; there is no per-kind struct hierarchy. The tree is a statement
// outline: expression interiors are not modeled, which is all the
// enumerated safe rewrites need.
package ast

import (
	"pyfmt/internal/source"
)

// Kind tags a statement node.
type Kind uint8

const (
	// Bad marks a node the parser could not classify.
	Bad Kind = iota
	// Module is the root node covering the whole file.
	Module
	// Simple is a simple statement with no dedicated kind.
	Simple
	// ExprStmt is a bare expression statement (docstrings included).
	ExprStmt
	// Import is a plain `import a, b as c` statement.
	Import
	// FromImport is a `from mod import x` statement.
	FromImport
	// If opens a conditional suite.
	If
	// Elif continues a conditional chain.
	Elif
	// Else is the final branch of a conditional, loop, or try.
	Else
	// While opens a loop suite.
	While
	// For opens a loop suite.
	For
	// Try opens an exception-handling suite.
	Try
	// Except handles exceptions of a try.
	Except
	// Finally closes an exception-handling chain.
	Finally
	// With opens a context-manager suite.
	With
	// FuncDef opens a function body.
	FuncDef
	// ClassDef opens a class body.
	ClassDef
	// Return is a return statement.
	Return
	// Decorator is an `@name` line attached to a following definition.
	Decorator
)

var kindNames = [...]string{
	Bad: "Bad", Module: "Module", Simple: "Simple", ExprStmt: "ExprStmt",
	Import: "Import", FromImport: "FromImport", If: "If", Elif: "Elif",
	Else: "Else", While: "While", For: "For", Try: "Try", Except: "Except",
	Finally: "Finally", With: "With", FuncDef: "FuncDef", ClassDef: "ClassDef",
	Return: "Return", Decorator: "Decorator",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// IsCompound reports whether the kind owns an indented suite.
func (k Kind) IsCompound() bool {
	switch k {
	case If, Elif, Else, While, For, Try, Except, Finally, With, FuncDef, ClassDef:
		return true
	default:
		return false
	}
}

// IsClause reports whether the kind continues a preceding compound
// statement rather than opening its own (the else-branch family).
func (k Kind) IsClause() bool {
	switch k {
	case Elif, Else, Except, Finally:
		return true
	default:
		return false
	}
}

// Node is one statement in the outline tree.
type Node struct {
	Kind      Kind
	Span      source.Span // byte span of the statement header
	StartLine int         // first physical line (1-based)
	EndLine   int         // last physical line, suite included
	Indent    int         // leading-space count of the header line
	HeaderIdx int         // index into the parse result's logical lines
	Children  []*Node     // suite statements for compound nodes
}

// Walk calls fn on n and every descendant, depth-first, preorder.
// Returning false prunes the subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// LastLine returns the maximum EndLine across the subtree.
func (n *Node) LastLine() int {
	last := n.EndLine
	for _, c := range n.Children {
		if cl := c.LastLine(); cl > last {
			last = cl
		}
	}
	return last
}
