package parser

import (
	"fmt"

	"pyfmt/internal/diag"
	"pyfmt/internal/source"
)

// SyntaxError pinpoints the first blocking problem found by the gate.
type SyntaxError struct {
	Line uint32
	Col  uint32
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d, col %d: %s", e.Line, e.Col, e.Msg)
}

// Check parses text in isolation and returns the outline plus the first
// error-level diagnostic, if any. Transforms that must not touch broken
// input call this and leave the text unchanged when the error is
// non-nil.
func Check(text string) (*Result, *SyntaxError) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<input>", []byte(text))

	bag := diag.NewBag(64)
	res := Parse(fs, id, Options{Reporter: diag.BagReporter{Bag: bag}})
	if !bag.HasErrors() {
		return res, nil
	}

	bag.Sort()
	for _, d := range bag.Items() {
		if d.Severity < diag.SevError {
			continue
		}
		start, _ := fs.Resolve(d.Primary)
		return res, &SyntaxError{Line: start.Line, Col: start.Col, Msg: d.Message}
	}
	return res, nil
}

// Valid reports whether text passes the gate.
func Valid(text string) bool {
	_, serr := Check(text)
	return serr == nil
}
