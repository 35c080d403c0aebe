// Package extfmt shells out to an installed Python formatter. The
// buffer is round-tripped through a temp file so a failing tool can
// never partially rewrite the caller's text.
package extfmt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Tool identifies a supported external formatter.
type Tool string

const (
	ToolRuff     Tool = "ruff"
	ToolBlack    Tool = "black"
	ToolAutopep8 Tool = "autopep8"
)

// ErrUnknownTool is returned for a tool name outside the supported set.
var ErrUnknownTool = errors.New("extfmt: unknown tool")

// ErrToolNotFound is returned when the executable is not on PATH.
var ErrToolNotFound = errors.New("extfmt: tool not on PATH")

// ToolError carries the captured stderr of a failed invocation.
type ToolError struct {
	Tool   Tool
	Err    error
	Stderr string
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("extfmt: %s failed: %v", e.Tool, e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += "\n" + s
	}
	return msg
}

func (e *ToolError) Unwrap() error { return e.Err }

// ParseTool validates a tool name from the command line.
func ParseTool(name string) (Tool, error) {
	switch Tool(name) {
	case ToolRuff, ToolBlack, ToolAutopep8:
		return Tool(name), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTool, name)
}

// OnPath reports whether an executable with the given name resolves.
func OnPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// args builds the in-place invocation for a tool and target file.
func args(tool Tool, path string) []string {
	switch tool {
	case ToolRuff:
		return []string{"ruff", "format", path}
	case ToolBlack:
		return []string{"black", "--quiet", path}
	default:
		return []string{"autopep8", "-a", "-a", "--in-place", path}
	}
}

// Run formats text with the given tool and returns the rewritten
// buffer. On any failure the original text comes back together with
// the error, stderr captured inside a ToolError.
func Run(ctx context.Context, tool Tool, text string) (string, error) {
	if _, err := ParseTool(string(tool)); err != nil {
		return text, err
	}
	if !OnPath(string(tool)) {
		return text, fmt.Errorf("%w: %s", ErrToolNotFound, tool)
	}

	dir, err := os.MkdirTemp("", "pyfmt-ext-*")
	if err != nil {
		return text, err
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "buffer.py")
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return text, err
	}

	argv := args(tool, path)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return text, &ToolError{Tool: tool, Err: err, Stderr: stderr.String()}
	}

	out, err := os.ReadFile(path)
	if err != nil {
		return text, err
	}
	return string(out), nil
}
