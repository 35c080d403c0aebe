package extfmt

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTool(t *testing.T) {
	for _, name := range []string{"ruff", "black", "autopep8"} {
		tool, err := ParseTool(name)
		require.NoError(t, err)
		assert.Equal(t, Tool(name), tool)
	}
	_, err := ParseTool("yapf")
	assert.ErrorIs(t, err, ErrUnknownTool)
}

func TestRunUnknownToolKeepsBuffer(t *testing.T) {
	src := "x=1\n"
	got, err := Run(context.Background(), Tool("yapf"), src)
	assert.ErrorIs(t, err, ErrUnknownTool)
	assert.Equal(t, src, got)
}

func TestRunMissingToolKeepsBuffer(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	src := "x=1\n"
	got, err := Run(context.Background(), ToolBlack, src)
	assert.ErrorIs(t, err, ErrToolNotFound)
	assert.Equal(t, src, got)
}

// fakeTool installs a shell script named like a formatter on PATH.
func fakeTool(t *testing.T, name, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell-script tool stub")
	}
	dir := t.TempDir()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte("#!/bin/sh\n"+script), 0o755))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestRunRewritesBuffer(t *testing.T) {
	// black --quiet <file>; $2 is the target
	fakeTool(t, "black", `printf 'x = 1\n' > "$2"`)

	got, err := Run(context.Background(), ToolBlack, "x=1\n")
	require.NoError(t, err)
	assert.Equal(t, "x = 1\n", got)
}

func TestRunFailureKeepsBufferAndCapturesStderr(t *testing.T) {
	fakeTool(t, "black", `echo "cannot parse" >&2; exit 1`)

	src := "x=1\n"
	got, err := Run(context.Background(), ToolBlack, src)
	require.Error(t, err)
	assert.Equal(t, src, got)

	var terr *ToolError
	require.ErrorAs(t, err, &terr)
	assert.Contains(t, terr.Stderr, "cannot parse")
}
