// Package diagfmt renders diagnostics for humans and machines: the
// classic path:line:col text form with a source excerpt and caret, and
// a stable JSON shape for tooling.
package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"pyfmt/internal/diag"
	"pyfmt/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	caretColor   = color.New(color.FgGreen, color.Bold)
)

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

// Pretty writes the bag's diagnostics in display order (callers sort
// the bag first). Each entry renders as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	    <source line>
//	    ^~~~
//
// followed by its notes when ShowNotes is set.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	items := bag.Items()
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
	}

	for i := range items {
		d := &items[i]
		label := d.Severity.String() + " " + d.Code.ID()
		if opts.Color {
			label = severityColor(d.Severity).Sprint(label)
		}
		writeHeader(w, fs, d.Primary, label, d.Message, opts)
		writeExcerpt(w, fs, d.Primary, opts)
		if opts.ShowNotes {
			for _, n := range d.Notes {
				note := "NOTE"
				if opts.Color {
					note = infoColor.Sprint(note)
				}
				writeHeader(w, fs, n.Span, note, n.Msg, opts)
				writeExcerpt(w, fs, n.Span, opts)
			}
		}
	}
}

func writeHeader(w io.Writer, fs *source.FileSet, span source.Span, label, msg string, opts PrettyOpts) {
	start, _ := fs.Resolve(span)
	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", displayPath(fs, span.File, opts.PathMode), start.Line, start.Col, label, msg)
}

// writeExcerpt prints the first source line of the span with a caret
// underline. Tabs render as-is; the caret offset is measured in display
// cells so wide runes stay aligned.
func writeExcerpt(w io.Writer, fs *source.FileSet, span source.Span, opts PrettyOpts) {
	f := fs.Get(span.File)
	if f == nil {
		return
	}
	start, end := fs.Resolve(span)
	line := f.GetLine(start.Line)
	if line == "" && span.Empty() {
		return
	}

	fmt.Fprintf(w, "    %s\n", line)

	col := int(start.Col) - 1
	if col < 0 {
		col = 0
	}
	if col > len(line) {
		col = len(line)
	}
	pad := runewidth.StringWidth(line[:col])

	length := 1
	if end.Line == start.Line && end.Col > start.Col {
		hi := int(end.Col) - 1
		if hi > len(line) {
			hi = len(line)
		}
		if hi > col {
			length = runewidth.StringWidth(line[col:hi])
		}
	} else if end.Line > start.Line {
		length = runewidth.StringWidth(line[col:])
	}
	if length < 1 {
		length = 1
	}

	caret := "^" + strings.Repeat("~", length-1)
	if opts.Color {
		caret = caretColor.Sprint(caret)
	}
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", pad), caret)
}

func displayPath(fs *source.FileSet, id source.FileID, mode PathMode) string {
	f := fs.Get(id)
	if f == nil {
		return "<unknown>"
	}
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return filepath.Base(f.Path)
	default:
		return f.FormatPath("auto", fs.BaseDir())
	}
}
