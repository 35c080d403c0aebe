package diagfmt

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestBuildDiagnosticsOutput(t *testing.T) {
	bag, fs := testBag()

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{IncludePositions: true, IncludeNotes: true})
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, diags = %d", out.Count, len(out.Diagnostics))
	}

	d := out.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "SYN2002" {
		t.Fatalf("header = %s %s", d.Severity, d.Code)
	}
	if d.Location.File != "test.py" || d.Location.StartLine != 1 || d.Location.StartCol != 5 {
		t.Fatalf("location = %+v", d.Location)
	}
	if len(d.Notes) != 1 || d.Notes[0].Message != "statement starts here" {
		t.Fatalf("notes = %+v", d.Notes)
	}
}

func TestBuildDiagnosticsOutputMax(t *testing.T) {
	bag, fs := testBag()
	bag.Merge(bag) // duplicate entries to have more than one

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 1})
	if len(out.Diagnostics) != 1 {
		t.Fatalf("want truncation to 1, got %d", len(out.Diagnostics))
	}
	if out.Count != bag.Len() {
		t.Fatalf("count %d should reflect full bag %d", out.Count, bag.Len())
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	bag, fs := testBag()

	var sb strings.Builder
	if err := WriteJSON(&sb, bag, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var decoded DiagnosticsOutput
	if err := json.Unmarshal([]byte(sb.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Count != 1 {
		t.Fatalf("decoded count = %d", decoded.Count)
	}
}
