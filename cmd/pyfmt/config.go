package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"pyfmt/internal/format"
)

// pyprojectConfig mirrors the [tool.pyfmt] table of pyproject.toml.
// Pointer fields distinguish "absent" from a zero value.
type pyprojectConfig struct {
	LineLength    *int    `toml:"line-length"`
	CommentWidth  *int    `toml:"comment-width"`
	QuoteStyle    *string `toml:"quote-style"`
	IndentWidth   *int    `toml:"indent-width"`
	WrapLongLines *bool   `toml:"wrap-long-lines"`
}

type pyprojectFile struct {
	Tool struct {
		Pyfmt pyprojectConfig `toml:"pyfmt"`
	} `toml:"tool"`
}

// findPyproject walks from dir to the filesystem root looking for
// pyproject.toml.
func findPyproject(dir string) (string, bool) {
	for {
		p := filepath.Join(dir, "pyproject.toml")
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func loadPyproject(path string) (pyprojectConfig, error) {
	var file pyprojectFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return pyprojectConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return file.Tool.Pyfmt, nil
}

// registerSettingsFlags adds the style knobs shared by fmt and indent.
func registerSettingsFlags(cmd *cobra.Command) {
	def := format.DefaultSettings()
	cmd.Flags().Int("indent-width", def.IndentWidth, "spaces per indentation level (2 or 4)")
	cmd.Flags().Int("line-length", def.LineLength, "maximum line length before wrapping")
	cmd.Flags().Int("comment-width", def.CommentWidth, "maximum width for reflowed comments")
	cmd.Flags().String("quote-style", def.QuoteStyle, "preferred quote style (auto|single|double)")
	cmd.Flags().Bool("wrap-long-lines", def.WrapLongLines, "wrap lines exceeding the length limit")
	cmd.Flags().Bool("no-config", false, "ignore pyproject.toml")
}

// resolveSettings layers defaults, the nearest pyproject.toml, and any
// explicitly set flags, in that order.
func resolveSettings(cmd *cobra.Command) (format.Settings, error) {
	st := format.DefaultSettings()

	noConfig, err := cmd.Flags().GetBool("no-config")
	if err != nil {
		return st, err
	}
	if !noConfig {
		cwd, err := os.Getwd()
		if err != nil {
			return st, err
		}
		if path, ok := findPyproject(cwd); ok {
			cfg, err := loadPyproject(path)
			if err != nil {
				return st, err
			}
			applyConfig(&st, cfg)
		}
	}

	if cmd.Flags().Changed("indent-width") {
		st.IndentWidth, _ = cmd.Flags().GetInt("indent-width")
	}
	if cmd.Flags().Changed("line-length") {
		st.LineLength, _ = cmd.Flags().GetInt("line-length")
	}
	if cmd.Flags().Changed("comment-width") {
		st.CommentWidth, _ = cmd.Flags().GetInt("comment-width")
	}
	if cmd.Flags().Changed("quote-style") {
		st.QuoteStyle, _ = cmd.Flags().GetString("quote-style")
	}
	if cmd.Flags().Changed("wrap-long-lines") {
		st.WrapLongLines, _ = cmd.Flags().GetBool("wrap-long-lines")
	}

	return st, validateSettings(st)
}

func applyConfig(st *format.Settings, cfg pyprojectConfig) {
	if cfg.IndentWidth != nil {
		st.IndentWidth = *cfg.IndentWidth
	}
	if cfg.LineLength != nil {
		st.LineLength = *cfg.LineLength
	}
	if cfg.CommentWidth != nil {
		st.CommentWidth = *cfg.CommentWidth
	}
	if cfg.QuoteStyle != nil {
		st.QuoteStyle = *cfg.QuoteStyle
	}
	if cfg.WrapLongLines != nil {
		st.WrapLongLines = *cfg.WrapLongLines
	}
}

func validateSettings(st format.Settings) error {
	if st.IndentWidth != 2 && st.IndentWidth != 4 {
		return fmt.Errorf("config: indent width must be 2 or 4, got %d", st.IndentWidth)
	}
	if st.LineLength < 20 {
		return fmt.Errorf("config: line length %d is too small", st.LineLength)
	}
	switch st.QuoteStyle {
	case "auto", "single", "double":
	default:
		return errors.New("config: quote style must be auto, single, or double")
	}
	return nil
}
