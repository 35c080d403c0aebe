package main

import (
	"github.com/spf13/cobra"

	"pyfmt/internal/extfmt"
)

var externalCmd = &cobra.Command{
	Use:   "external [flags] <path> [path...]",
	Short: "Format files with an installed external formatter",
	Long: `external round-trips each file through ruff, black, or autopep8.
The tool runs against a temp copy, so a failing invocation never
partially rewrites a file; its stderr is reported instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExternalCmd,
}

func init() {
	registerRunFlags(externalCmd)
	externalCmd.Flags().String("tool", "ruff", "formatter to invoke (ruff|black|autopep8)")
}

func runExternalCmd(cmd *cobra.Command, args []string) error {
	name, err := cmd.Flags().GetString("tool")
	if err != nil {
		return err
	}
	tool, err := extfmt.ParseTool(name)
	if err != nil {
		return err
	}

	tf := func(text string) (string, error) {
		return extfmt.Run(cmd.Context(), tool, text)
	}
	return runPaths(cmd, "external", args, tf, "")
}
