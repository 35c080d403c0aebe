package diagfmt

import (
	"strings"
	"testing"

	"pyfmt/internal/diag"
	"pyfmt/internal/source"
)

func testBag() (*diag.Bag, *source.FileSet) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.py", []byte("x = (1\ny = 2\n"))

	bag := diag.NewBag(16)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynUnclosedParen,
		Message:  "'(' was never closed",
		Primary:  source.Span{File: id, Start: 4, End: 5},
		Notes: []diag.Note{
			{Span: source.Span{File: id, Start: 0, End: 1}, Msg: "statement starts here"},
		},
	})
	return bag, fs
}

func TestPrettyPlain(t *testing.T) {
	bag, fs := testBag()

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})

	want := "test.py:1:5: ERROR SYN2002: '(' was never closed\n" +
		"    x = (1\n" +
		"        ^\n"
	if sb.String() != want {
		t.Fatalf("got:\n%q\nwant:\n%q", sb.String(), want)
	}
}

func TestPrettyNotes(t *testing.T) {
	bag, fs := testBag()

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{ShowNotes: true})

	out := sb.String()
	if !strings.Contains(out, "test.py:1:1: NOTE: statement starts here") {
		t.Fatalf("note missing:\n%s", out)
	}
}

func TestPrettyCaretSpansRange(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("w.py", []byte("return foo\n"))

	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.FmtLongLine,
		Message:  "example",
		Primary:  source.Span{File: id, Start: 7, End: 10},
	})

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})
	if !strings.Contains(sb.String(), "\n           ^~~\n") {
		t.Fatalf("caret misaligned:\n%s", sb.String())
	}
}

func TestPrettyMaxTruncates(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("m.py", []byte("a\nb\n"))

	bag := diag.NewBag(8)
	for i := uint32(0); i < 3; i++ {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevInfo,
			Code:     diag.FmtInfo,
			Message:  "note",
			Primary:  source.Span{File: id, Start: i, End: i + 1},
		})
	}

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{Max: 1})
	if got := strings.Count(sb.String(), "FMT3000"); got != 1 {
		t.Fatalf("expected 1 rendered diagnostic, got %d:\n%s", got, sb.String())
	}
}
