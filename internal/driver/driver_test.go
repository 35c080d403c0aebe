package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pyfmt/internal/format"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		p := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return root
}

func TestCollectPythonFiles(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.py":             "x = 1\n",
		"pkg/b.py":         "y = 2\n",
		"pkg/readme.txt":   "not code",
		"__pycache__/c.py": "cached",
		".venv/lib/d.py":   "env",
	})

	files, err := CollectPythonFiles(context.Background(), []string{root})
	require.NoError(t, err)

	var rels []string
	for _, f := range files {
		rel, _ := filepath.Rel(root, f)
		rels = append(rels, rel)
	}
	assert.Equal(t, []string{"a.py", filepath.Join("pkg", "b.py")}, rels)
}

func TestCollectPythonFilesDeduplicates(t *testing.T) {
	root := writeTree(t, map[string]string{"a.py": "x = 1\n"})
	p := filepath.Join(root, "a.py")

	files, err := CollectPythonFiles(context.Background(), []string{p, p, root})
	require.NoError(t, err)
	assert.Equal(t, []string{p}, files)
}

func TestRunWritesChangedFiles(t *testing.T) {
	root := writeTree(t, map[string]string{"a.py": "def f():\n\tx = 1\n"})
	p := filepath.Join(root, "a.py")

	indent := func(text string) (string, error) { return format.Indent(text, 4), nil }
	results, err := Run(context.Background(), []string{p}, indent, Options{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Changed)
	require.NoError(t, results[0].Err)

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "def f():\n    x = 1\n", string(data))
}

func TestRunCheckDoesNotWrite(t *testing.T) {
	src := "def f():\n\tx = 1\n"
	root := writeTree(t, map[string]string{"a.py": src})
	p := filepath.Join(root, "a.py")

	indent := func(text string) (string, error) { return format.Indent(text, 4), nil }
	results, err := Run(context.Background(), []string{p}, indent, Options{Check: true})
	require.NoError(t, err)
	assert.True(t, results[0].Changed)

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, src, string(data))
}

func TestRunStdoutReturnsBuffer(t *testing.T) {
	root := writeTree(t, map[string]string{"a.py": "x = 1\n"})

	upper := func(text string) (string, error) { return strings.ToUpper(text), nil }
	results, err := Run(context.Background(), []string{root}, upper, Options{Stdout: true})
	require.NoError(t, err)
	assert.Equal(t, "X = 1\n", string(results[0].Output))
}

func TestRunPerFileErrors(t *testing.T) {
	root := writeTree(t, map[string]string{"a.py": "ok\n", "b.py": "bad\n"})

	fail := errors.New("rejected")
	tf := func(text string) (string, error) {
		if strings.HasPrefix(text, "bad") {
			return text, fail
		}
		return text, nil
	}
	results, err := Run(context.Background(), []string{root}, tf, Options{})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, fail)
}

func TestRunNoFiles(t *testing.T) {
	root := writeTree(t, map[string]string{"readme.txt": "no code"})
	_, err := Run(context.Background(), []string{root}, nil, Options{})
	assert.ErrorIs(t, err, ErrNoFiles)
}

func TestRunCacheSkipsCleanFiles(t *testing.T) {
	root := writeTree(t, map[string]string{"a.py": "x = 1\n"})
	cache, err := OpenDiskCacheAt(filepath.Join(root, "cache"))
	require.NoError(t, err)

	calls := 0
	identity := func(text string) (string, error) {
		calls++
		return text, nil
	}
	opts := Options{Cache: cache, CacheKey: "indent/4"}

	_, err = Run(context.Background(), []string{root}, identity, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	_, err = Run(context.Background(), []string{root}, identity, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "clean verdict should skip the transform")
}

func TestRunCacheKeyedBySettings(t *testing.T) {
	root := writeTree(t, map[string]string{"a.py": "x = 1\n"})
	cache, err := OpenDiskCacheAt(filepath.Join(root, "cache"))
	require.NoError(t, err)

	calls := 0
	identity := func(text string) (string, error) {
		calls++
		return text, nil
	}

	_, err = Run(context.Background(), []string{root}, identity,
		Options{Cache: cache, CacheKey: "indent/4"})
	require.NoError(t, err)
	_, err = Run(context.Background(), []string{root}, identity,
		Options{Cache: cache, CacheKey: "indent/2"})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "c"))
	require.NoError(t, err)

	key := verdictKey([]byte("content"), "op")
	var v Verdict
	ok, err := cache.Get(key, &v)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Put(key, &Verdict{Schema: verdictSchemaVersion, Clean: true}))
	ok, err = cache.Get(key, &v)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, v.Clean)
}
