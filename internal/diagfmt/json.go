package diagfmt

import (
	"encoding/json"
	"io"
	"path/filepath"

	"pyfmt/internal/diag"
	"pyfmt/internal/source"
)

// LocationJSON pinpoints a span in machine-readable form.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// NoteJSON is a secondary message attached to a diagnostic.
type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// DiagnosticJSON is one diagnostic in the JSON output.
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
}

// DiagnosticsOutput is the root of the JSON document.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

func makeLocation(span source.Span, fs *source.FileSet, opts JSONOpts) LocationJSON {
	f := fs.Get(span.File)

	var path string
	switch opts.PathMode {
	case PathModeAbsolute:
		path = f.FormatPath("absolute", "")
	case PathModeRelative:
		path = f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		path = filepath.Base(f.Path)
	default:
		path = f.FormatPath("auto", fs.BaseDir())
	}

	loc := LocationJSON{
		File:      path,
		StartByte: span.Start,
		EndByte:   span.End,
	}
	if opts.IncludePositions {
		start, end := fs.Resolve(span)
		loc.StartLine = start.Line
		loc.StartCol = start.Col
		loc.EndLine = end.Line
		loc.EndCol = end.Col
	}
	return loc
}

// BuildDiagnosticsOutput assembles the JSON document without
// serializing it. Count always reflects the full bag even when Max
// truncates the list.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	n := len(items)
	if opts.Max > 0 && opts.Max < n {
		n = opts.Max
	}

	out := DiagnosticsOutput{
		Diagnostics: make([]DiagnosticJSON, 0, n),
		Count:       bag.Len(),
	}
	for i := 0; i < n; i++ {
		d := &items[i]
		dj := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Location: makeLocation(d.Primary, fs, opts),
		}
		if opts.IncludeNotes {
			for _, note := range d.Notes {
				dj.Notes = append(dj.Notes, NoteJSON{
					Message:  note.Msg,
					Location: makeLocation(note.Span, fs, opts),
				})
			}
		}
		out.Diagnostics = append(out.Diagnostics, dj)
	}
	return out
}

// WriteJSON serializes the bag as indented JSON.
func WriteJSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDiagnosticsOutput(bag, fs, opts))
}
