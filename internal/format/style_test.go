package format

import (
	"strings"
	"testing"

	"pyfmt/internal/parser"
)

func TestPetPeeves(t *testing.T) {
	cases := map[string]string{
		"f (x ,1)":      "f(x, 1)",
		"d = {1 :2}":    "d = {1: 2}",
		"a [i]":         "a[i]",
		"    a  =  1":   "    a = 1",
		// the call-paren rule cannot tell keywords from call targets,
		// and the walrus survives the colon rule via the guard
		"while (n := f()):": "while(n := f()):",
	}
	for in, want := range cases {
		if got := fixPetPeeves(in); got != want {
			t.Errorf("fixPetPeeves(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestOperatorSpacing(t *testing.T) {
	cases := map[string]string{
		"x=1+2":           "x = 1 + 2",
		"f(a = 1, b=2)":   "f(a=1, b=2)",
		"if a<b and c:":   "if a < b and c:",
		"x=1  # note":     "x = 1  # note",
		"    y=2":         "    y = 2",
		"n //= 2 ** k":    "n //= 2 ** k",
		"# just a remark": "# just a remark",
	}
	for in, want := range cases {
		if got := fixOperatorSpacing(in); got != want {
			t.Errorf("fixOperatorSpacing(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestOperatorSpacingFallback(t *testing.T) {
	// unterminated string: the lexer gives up, the regex pass runs
	if got := fixOperatorSpacing("z=1+'bad"); got != "z = 1 + 'bad" {
		t.Fatalf("fallback = %q", got)
	}
}

func TestKeywordEquals(t *testing.T) {
	if got := fixKeywordEquals("f(x = 2)"); got != "f(x=2)" {
		t.Fatalf("got %q", got)
	}
	if got := fixKeywordEquals("x = 1"); got != "x = 1" {
		t.Fatalf("assignment touched: %q", got)
	}
}

func TestReflowComments(t *testing.T) {
	if got := reflowComments("x = 1   #comment", 72); got != "x = 1  # comment" {
		t.Fatalf("inline = %q", got)
	}
	if got := reflowComments(`x = "a#b" #c`, 72); got != `x = "a#b"  # c` {
		t.Fatalf("hash inside string mishandled: %q", got)
	}
	if got := reflowComments("#!/usr/bin/env python", 72); got != "#!/usr/bin/env python" {
		t.Fatalf("shebang touched: %q", got)
	}
	want := "# one two\n# three\n# four"
	if got := reflowComments("# one two three four", 9); got != want {
		t.Fatalf("wrap = %q, want %q", got, want)
	}
}

func TestEnforceBlankLines(t *testing.T) {
	src := strings.Join([]string{
		"import os",
		"def f():",
		"    pass",
		"class C:",
		"    def m(self):",
		"        pass",
		"    def n(self):",
		"        pass",
	}, "\n")
	want := strings.Join([]string{
		"import os",
		"",
		"",
		"def f():",
		"    pass",
		"",
		"",
		"class C:",
		"",
		"    def m(self):",
		"        pass",
		"",
		"    def n(self):",
		"        pass",
	}, "\n")
	if got := enforceBlankLines(src); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEnforceBlankLinesDecorator(t *testing.T) {
	src := "x = 1\n@deco\ndef g():\n    pass"
	want := "x = 1\n\n\n@deco\ndef g():\n    pass"
	if got := enforceBlankLines(src); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWrapBoundaries(t *testing.T) {
	exact := "x = foo(" + strings.Repeat("a", 10) + ")"
	if got := wrapLongLines(exact, len(exact), 72, 4); got != exact {
		t.Fatalf("line at the limit wrapped: %q", got)
	}
	plain := strings.Repeat("x", 30)
	if got := wrapLongLines(plain, 29, 72, 4); got != plain {
		t.Fatalf("bracketless line wrapped: %q", got)
	}
}

func TestWrapAtCommas(t *testing.T) {
	src := "result = foo(aaaa, bbbb, cccc)"
	want := "result = foo(aaaa,\n    bbbb, cccc)"
	if got := wrapLongLines(src, 20, 72, 4); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWrapLongComment(t *testing.T) {
	src := "# alpha beta gamma delta"
	want := "# alpha beta\n# gamma delta"
	if got := wrapLongLines(src, 15, 13, 4); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStylePipeline(t *testing.T) {
	src := "import os\nx=1\ndef f( a,b ):\n  return a+b\n"
	want := "import os\nx = 1\n\n\ndef f( a, b ):\n    return a + b\n"
	got, err := Style(src, DefaultSettings())
	if err != nil {
		t.Fatalf("Style failed: %v", err)
	}
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStyleGateRejectsBrokenInput(t *testing.T) {
	src := "def f(:\n"
	got, err := Style(src, DefaultSettings())
	if err == nil {
		t.Fatal("expected syntax error")
	}
	if got != src {
		t.Fatalf("buffer modified despite gate: %q", got)
	}
}

func TestStyleOutputStillParses(t *testing.T) {
	srcs := []string{
		"def f(a, b):\n    if a:\n        return a+b\n    return 0\n",
		"class C:\n    def m(self):\n        return {1 :2}\n",
		"for i in range(10):\n    print(i)\n",
	}
	for _, src := range srcs {
		got, err := Style(src, DefaultSettings())
		if err != nil {
			t.Fatalf("Style(%q) failed: %v", src, err)
		}
		if !parser.Valid(got) {
			t.Fatalf("output no longer parses:\n%s", got)
		}
	}
}
