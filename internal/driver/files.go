// Package driver runs the formatting transforms over files and
// directories: path collection, per-file apply/check/stdout handling,
// bounded parallelism, and a disk cache of clean verdicts.
package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// skipDirs are directory names never descended into during collection.
var skipDirs = map[string]bool{
	".git":               true,
	".hg":                true,
	".tox":               true,
	".venv":              true,
	"venv":               true,
	"__pycache__":        true,
	".mypy_cache":        true,
	".pytest_cache":      true,
	"site-packages":      true,
	"node_modules":       true,
	".ruff_cache":        true,
	".eggs":              true,
	".ipynb_checkpoints": true,
}

// CollectPythonFiles expands the given paths into a sorted, de-duplicated
// list of .py files. Directories are walked recursively; files given
// explicitly are taken even without the extension check on directories.
func CollectPythonFiles(ctx context.Context, paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if strings.HasSuffix(p, ".py") {
				add(p)
			}
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				if skipDirs[d.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasSuffix(path, ".py") {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}
