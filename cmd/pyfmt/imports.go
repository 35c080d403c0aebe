package main

import (
	"github.com/spf13/cobra"

	"pyfmt/internal/imports"
)

var importsCmd = &cobra.Command{
	Use:   "imports [flags] <path> [path...]",
	Short: "Group and sort top-level imports",
	Long: `imports reorders the leading import block into stdlib, third-party,
and local groups, each sorted case-insensitively. The module docstring
and __future__ imports stay put. Files that do not parse are left
untouched and reported.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImportsCmd,
}

func init() {
	registerRunFlags(importsCmd)
}

func runImportsCmd(cmd *cobra.Command, args []string) error {
	classifier := imports.NewClassifier(imports.DetectEnvResolver())
	tf := func(text string) (string, error) {
		return imports.Organize(text, classifier)
	}
	return runPaths(cmd, "imports", args, tf, "")
}
