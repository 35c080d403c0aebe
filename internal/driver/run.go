package driver

import (
	"bytes"
	"context"
	"errors"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ErrNoFiles is returned when path collection finds nothing to format.
var ErrNoFiles = errors.New("driver: no python files found")

// Transform rewrites one buffer. A non-nil error means the buffer was
// left untouched (the parse gate, typically).
type Transform func(text string) (string, error)

// Options configures a driver run.
type Options struct {
	// Check reports would-be changes without touching files.
	Check bool
	// Stdout returns the formatted buffers in the results instead of
	// rewriting files.
	Stdout bool
	// Jobs bounds parallelism; <= 0 means GOMAXPROCS.
	Jobs int
	// Cache, when non-nil, skips files already known clean for CacheKey.
	Cache *DiskCache
	// CacheKey fingerprints the transform and its settings; files are
	// keyed by content hash + CacheKey.
	CacheKey string
}

// Result captures the outcome for a single file.
type Result struct {
	Path    string
	Changed bool
	Output  []byte // formatted content, stdout mode only
	Err     error
}

// Run collects .py files from paths and applies tf to each, in
// parallel. Per-file failures land in the corresponding Result; only
// collection failures and context cancellation abort the run.
func Run(ctx context.Context, paths []string, tf Transform, opts Options) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := CollectPythonFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// index-unique writes, no mutex needed
	results := make([]Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = runOne(path, tf, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func runOne(path string, tf Transform, opts Options) Result {
	res := Result{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = err
		return res
	}

	key := verdictKey(data, opts.CacheKey)
	if opts.Cache != nil {
		var v Verdict
		if ok, err := opts.Cache.Get(key, &v); err == nil && ok && v.Clean {
			if opts.Stdout {
				res.Output = data
			}
			return res
		}
	}

	formatted, err := tf(string(data))
	if err != nil {
		res.Err = err
		return res
	}
	out := []byte(formatted)
	changed := !bytes.Equal(data, out)

	if !changed && opts.Cache != nil {
		// best effort; a failed put only costs a future reformat
		_ = opts.Cache.Put(key, &Verdict{Schema: verdictSchemaVersion, Clean: true})
	}

	if opts.Check {
		res.Changed = changed
		return res
	}
	if opts.Stdout {
		res.Output = out
		res.Changed = changed
		return res
	}

	if changed {
		mode := os.FileMode(0o644)
		if info, statErr := os.Stat(path); statErr == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(path, out, mode.Perm()); err != nil {
			res.Err = err
			return res
		}
		res.Changed = true
	}
	return res
}
