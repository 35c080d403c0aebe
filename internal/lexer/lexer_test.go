package lexer_test

import (
	"testing"

	"pyfmt/internal/lexer"
	"pyfmt/internal/source"
	"pyfmt/internal/token"
)

// testReporter collects all reports emitted by the lexer.
type testReporter struct {
	kinds []string
	msgs  []string
}

func (r *testReporter) Report(kind string, span source.Span, msg string) {
	r.kinds = append(r.kinds, kind)
	r.msgs = append(r.msgs, msg)
}

// makeTestLexer builds a lexer over a virtual file.
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.py", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter
}

func kindsOf(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, t := range toks {
		out = append(out, t.Kind)
	}
	return out
}

func expectKinds(t *testing.T, input string, want ...token.Kind) {
	t.Helper()
	lx, rep := makeTestLexer(input)
	got := kindsOf(lx.Tokens())
	if len(rep.kinds) != 0 {
		t.Fatalf("input %q: unexpected lexer reports: %v", input, rep.msgs)
	}
	if len(got) != len(want) {
		t.Fatalf("input %q: got %d tokens %v, want %d", input, len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("input %q: token %d = %v, want %v", input, i, got[i], want[i])
		}
	}
}

func TestLexSimpleStatement(t *testing.T) {
	expectKinds(t, "x = 1 + 2",
		token.Ident, token.Assign, token.IntLit, token.Plus, token.IntLit, token.EOF)
}

func TestLexKeywordsAndOperators(t *testing.T) {
	expectKinds(t, "if a and b:",
		token.KwIf, token.Ident, token.KwAnd, token.Ident, token.Colon, token.EOF)
	expectKinds(t, "x //= 2 ** n",
		token.Ident, token.SlashSlashAssign, token.IntLit, token.StarStar, token.Ident, token.EOF)
	expectKinds(t, "y := f(x) -> int",
		token.Ident, token.Walrus, token.Ident, token.LParen, token.Ident,
		token.RParen, token.Arrow, token.Ident, token.EOF)
}

func TestLexStrings(t *testing.T) {
	expectKinds(t, `s = "hi"`, token.Ident, token.Assign, token.StringLit, token.EOF)
	expectKinds(t, `s = f"val {x}"`, token.Ident, token.Assign, token.StringLit, token.EOF)
	expectKinds(t, `s = r'\d+'`, token.Ident, token.Assign, token.StringLit, token.EOF)
	expectKinds(t, `s = """multi
line"""`, token.Ident, token.Assign, token.StringLit, token.EOF)
	expectKinds(t, `s = ''`, token.Ident, token.Assign, token.StringLit, token.EOF)
}

func TestLexStringPrefixIsNotIdent(t *testing.T) {
	lx, _ := makeTestLexer(`rb"\x00"`)
	toks := lx.Tokens()
	if toks[0].Kind != token.StringLit {
		t.Fatalf("rb-string lexed as %v", toks[0].Kind)
	}
	if toks[0].Text != `rb"\x00"` {
		t.Fatalf("string text = %q", toks[0].Text)
	}
}

func TestLexComment(t *testing.T) {
	lx, _ := makeTestLexer("x = 1  # trailing\n")
	toks := lx.Tokens()
	want := []token.Kind{token.Ident, token.Assign, token.IntLit, token.Comment, token.Newline, token.EOF}
	got := kindsOf(toks)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %v, want %v (all: %v)", i, got[i], want[i], got)
		}
	}
	if toks[3].Text != "# trailing" {
		t.Fatalf("comment text = %q", toks[3].Text)
	}
}

func TestLexNumbers(t *testing.T) {
	cases := map[string]token.Kind{
		"42":      token.IntLit,
		"0x_FF":   token.IntLit,
		"0o755":   token.IntLit,
		"0b1010":  token.IntLit,
		"3.14":    token.FloatLit,
		"1_000.5": token.FloatLit,
		"1e10":    token.FloatLit,
		"2.5e-3":  token.FloatLit,
		".5":      token.FloatLit,
		"3j":      token.ImagLit,
	}
	for input, want := range cases {
		lx, rep := makeTestLexer(input)
		tok := lx.Next()
		if tok.Kind != want {
			t.Errorf("%q lexed as %v, want %v", input, tok.Kind, want)
		}
		if tok.Text != input {
			t.Errorf("%q text = %q", input, tok.Text)
		}
		if len(rep.kinds) != 0 {
			t.Errorf("%q: unexpected reports %v", input, rep.msgs)
		}
	}
}

func TestLexUnterminatedStringReports(t *testing.T) {
	lx, rep := makeTestLexer(`s = "oops` + "\n")
	toks := lx.Tokens()
	if !lx.Failed() {
		t.Fatal("expected lexer failure flag")
	}
	if len(rep.kinds) == 0 || rep.kinds[0] != "unterminated-string" {
		t.Fatalf("reports = %v", rep.kinds)
	}
	found := false
	for _, tok := range toks {
		if tok.Kind == token.Invalid {
			found = true
		}
	}
	if !found {
		t.Fatal("expected an Invalid token")
	}
}

func TestLexBackslashContinuation(t *testing.T) {
	expectKinds(t, "x = 1 + \\\n    2",
		token.Ident, token.Assign, token.IntLit, token.Plus,
		token.Backslash, token.IntLit, token.EOF)
}
