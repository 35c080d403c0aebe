package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pyfmt/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "pyfmt",
	Short: "Python source reformatter",
	Long:  `pyfmt repairs indentation, applies layout conventions, organizes imports, and performs a small set of safe refactorings on Python source files`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(indentCmd)
	rootCmd.AddCommand(importsCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(externalCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().Int("jobs", 0, "number of files formatted in parallel (0 = all CPUs)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		mode, err := cmd.Flags().GetString("color")
		if err != nil {
			return err
		}
		switch mode {
		case "on":
			color.NoColor = false
		case "off":
			color.NoColor = true
		default:
			color.NoColor = !isTerminal(os.Stdout)
		}
		return nil
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
