package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pyfmt/internal/diag"
	"pyfmt/internal/diagfmt"
	"pyfmt/internal/driver"
	"pyfmt/internal/parser"
	"pyfmt/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <path> [path...]",
	Short: "Parse files and report syntax diagnostics",
	Long: `check runs every file through the parse gate and prints the
diagnostics that would block the gated transforms, with source excerpts
and carets. Nothing is rewritten.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheckCmd,
}

func init() {
	checkCmd.Flags().String("format", "text", "output format (text|json)")
	checkCmd.Flags().Bool("notes", true, "show secondary notes attached to diagnostics")
}

func runCheckCmd(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	showNotes, err := cmd.Flags().GetBool("notes")
	if err != nil {
		return err
	}
	maxDiag, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	files, err := driver.CollectPythonFiles(cmd.Context(), args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return driver.ErrNoFiles
	}

	fs := source.NewFileSet()
	bag := diag.NewBag(maxDiag)
	for _, path := range files {
		id, err := fs.Load(path)
		if err != nil {
			bag.Add(diag.Diagnostic{
				Severity: diag.SevError,
				Code:     diag.IOReadFailed,
				Message:  "failed to read file: " + err.Error(),
			})
			continue
		}
		parser.Parse(fs, id, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	}
	bag.Sort()
	bag.Dedup()

	switch outputFormat {
	case "text":
		if !quiet || bag.HasErrors() {
			diagfmt.Pretty(os.Stdout, bag, fs, diagfmt.PrettyOpts{
				Color:     !color.NoColor,
				ShowNotes: showNotes,
				Max:       maxDiag,
			})
		}
	case "json":
		opts := diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: showNotes, Max: maxDiag}
		if err := diagfmt.WriteJSON(os.Stdout, bag, fs, opts); err != nil {
			return err
		}
	default:
		return fmt.Errorf("check: unsupported output format %q", outputFormat)
	}

	if bag.HasErrors() {
		return fmt.Errorf("check: syntax problems found")
	}
	return nil
}
