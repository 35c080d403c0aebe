package main

import (
	"os"
	"path/filepath"
	"testing"

	"pyfmt/internal/format"
)

func TestFindPyprojectWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg := filepath.Join(root, "pyproject.toml")
	if err := os.WriteFile(cfg, []byte("[tool.pyfmt]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, ok := findPyproject(nested)
	if !ok || got != cfg {
		t.Fatalf("findPyproject = %q, %v", got, ok)
	}
}

func TestFindPyprojectMissing(t *testing.T) {
	if _, ok := findPyproject(t.TempDir()); ok {
		t.Fatal("expected no pyproject.toml")
	}
}

func TestLoadPyprojectAppliesKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pyproject.toml")
	content := "[tool.pyfmt]\nline-length = 100\ncomment-width = 80\nquote-style = \"double\"\nindent-width = 2\nwrap-long-lines = false\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadPyproject(path)
	if err != nil {
		t.Fatalf("loadPyproject failed: %v", err)
	}

	st := format.DefaultSettings()
	applyConfig(&st, cfg)
	if st.LineLength != 100 || st.CommentWidth != 80 || st.QuoteStyle != "double" ||
		st.IndentWidth != 2 || st.WrapLongLines {
		t.Fatalf("settings = %+v", st)
	}
}

func TestLoadPyprojectIgnoresOtherTools(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pyproject.toml")
	content := "[tool.black]\nline-length = 120\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadPyproject(path)
	if err != nil {
		t.Fatalf("loadPyproject failed: %v", err)
	}

	st := format.DefaultSettings()
	applyConfig(&st, cfg)
	if st != format.DefaultSettings() {
		t.Fatalf("foreign table leaked into settings: %+v", st)
	}
}

func TestValidateSettings(t *testing.T) {
	ok := format.DefaultSettings()
	if err := validateSettings(ok); err != nil {
		t.Fatalf("default settings rejected: %v", err)
	}

	bad := ok
	bad.IndentWidth = 3
	if err := validateSettings(bad); err == nil {
		t.Fatal("indent width 3 accepted")
	}

	bad = ok
	bad.QuoteStyle = "fancy"
	if err := validateSettings(bad); err == nil {
		t.Fatal("quote style accepted")
	}

	bad = ok
	bad.LineLength = 10
	if err := validateSettings(bad); err == nil {
		t.Fatal("tiny line length accepted")
	}
}
