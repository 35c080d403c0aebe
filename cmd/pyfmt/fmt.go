package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pyfmt/internal/format"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path> [path...]",
	Short: "Apply the full style pipeline to Python files",
	Long: `fmt runs the parse-gated style pipeline: whitespace and operator
spacing, comment reflow, blank-line conventions, reindentation, and
optional long-line wrapping. Files that do not parse are left untouched
and reported.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmtCmd,
}

func init() {
	registerRunFlags(fmtCmd)
	registerSettingsFlags(fmtCmd)
}

func runFmtCmd(cmd *cobra.Command, args []string) error {
	st, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	tf := func(text string) (string, error) {
		return format.Style(text, st)
	}
	cacheKey := fmt.Sprintf("fmt/%d/%d/%d/%s/%t",
		st.IndentWidth, st.LineLength, st.CommentWidth, st.QuoteStyle, st.WrapLongLines)
	return runPaths(cmd, "fmt", args, tf, cacheKey)
}
