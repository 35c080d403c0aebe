// Package format holds the two transform families of the reformatter:
// the grammar-free repair+reindent pair, which accepts any text and
// never fails, and the parse-gated style pipeline. Every function is
// pure text in, text out.
package format

// Settings is the resolved configuration a caller passes into the
// pipeline. The package never reads configuration sources itself.
type Settings struct {
	IndentWidth   int    // 2 or 4
	LineLength    int    // wrap budget, default 79
	CommentWidth  int    // comment reflow budget, default 72
	QuoteStyle    string // auto | single | double; accepted, enforced by no transform yet
	WrapLongLines bool
}

// DefaultSettings returns the stock configuration.
func DefaultSettings() Settings {
	return Settings{
		IndentWidth:   4,
		LineLength:    79,
		CommentWidth:  72,
		QuoteStyle:    "auto",
		WrapLongLines: true,
	}
}

// withDefaults fills zero values so partially populated Settings
// behave sanely.
func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.IndentWidth <= 0 {
		s.IndentWidth = d.IndentWidth
	}
	if s.LineLength <= 0 {
		s.LineLength = d.LineLength
	}
	if s.CommentWidth <= 0 {
		s.CommentWidth = d.CommentWidth
	}
	if s.QuoteStyle == "" {
		s.QuoteStyle = d.QuoteStyle
	}
	return s
}
