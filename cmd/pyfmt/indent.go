package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pyfmt/internal/format"
)

var indentCmd = &cobra.Command{
	Use:   "indent [flags] <path> [path...]",
	Short: "Repair and rebuild indentation",
	Long: `indent runs the grammar-free repair pass: heuristic block repair
followed by full reindentation. It never fails on broken input, so it
is the tool for files too damaged for the style pipeline.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIndentCmd,
}

func init() {
	registerRunFlags(indentCmd)
	registerSettingsFlags(indentCmd)
}

func runIndentCmd(cmd *cobra.Command, args []string) error {
	st, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	tf := func(text string) (string, error) {
		return format.Indent(text, st.IndentWidth), nil
	}
	return runPaths(cmd, "indent", args, tf, fmt.Sprintf("indent/%d", st.IndentWidth))
}
