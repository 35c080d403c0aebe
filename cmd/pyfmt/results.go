package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pyfmt/internal/driver"
)

// registerRunFlags adds the flags every file-rewriting subcommand
// shares.
func registerRunFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("check", false, "report files that would change without rewriting them")
	cmd.Flags().Bool("stdout", false, "print results to stdout instead of rewriting files")
	cmd.Flags().String("format", "text", "output format (text|json)")
	cmd.Flags().Bool("no-cache", false, "bypass the clean-file cache")
}

// runPaths applies a transform to the given paths and renders results
// according to the shared flags. cacheKey enables the clean-verdict
// cache when non-empty.
func runPaths(cmd *cobra.Command, name string, args []string, tf driver.Transform, cacheKey string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	toStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}

	if toStdout && check {
		return fmt.Errorf("%s: --stdout cannot be used with --check", name)
	}
	if toStdout && outputFormat != "text" {
		return fmt.Errorf("%s: --stdout is only supported with text output", name)
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return err
	}

	var cache *driver.DiskCache
	if cacheKey != "" && !noCache {
		// a broken cache dir only disables the fast path
		cache, _ = driver.OpenDiskCache("pyfmt")
	}

	results, err := driver.Run(cmd.Context(), args, tf, driver.Options{
		Check:    check,
		Stdout:   toStdout,
		Jobs:     jobs,
		Cache:    cache,
		CacheKey: cacheKey,
	})
	if err != nil {
		return err
	}

	var hasErrors, hasChanges bool
	switch outputFormat {
	case "text":
		if toStdout {
			renderStdout(name, results, &hasErrors)
		} else {
			renderText(name, results, check, quiet, &hasErrors, &hasChanges)
		}
	case "json":
		if err := renderJSON(results, check); err != nil {
			return err
		}
		for _, res := range results {
			if res.Err != nil {
				hasErrors = true
			}
			if res.Changed {
				hasChanges = true
			}
		}
	default:
		return fmt.Errorf("%s: unsupported output format %q", name, outputFormat)
	}

	if hasErrors {
		return fmt.Errorf("%s: failed to process some files", name)
	}
	if check && hasChanges {
		return fmt.Errorf("%s: formatting changes required", name)
	}
	return nil
}

func renderStdout(name string, results []driver.Result, hasErrors *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "%s: %s: %v\n", name, res.Path, res.Err)
			continue
		}
		os.Stdout.Write(res.Output)
	}
}

func renderText(name string, results []driver.Result, check, quiet bool, hasErrors, hasChanges *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "%s: %s: %v\n", name, res.Path, res.Err)
			continue
		}
		if !res.Changed {
			continue
		}
		*hasChanges = true
		if quiet {
			continue
		}
		if check {
			fmt.Fprintln(os.Stdout, res.Path)
		} else {
			fmt.Fprintf(os.Stdout, "rewrote %s\n", res.Path)
		}
	}
}

func renderJSON(results []driver.Result, check bool) error {
	type jsonResult struct {
		Path     string `json:"path"`
		Changed  bool   `json:"changed"`
		Error    string `json:"error,omitempty"`
		CheckRun bool   `json:"check"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, CheckRun: check}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		payload = append(payload, jr)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
