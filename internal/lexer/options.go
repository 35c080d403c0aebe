package lexer

import (
	"pyfmt/internal/source"
)

// Reporter is a thin interface so the lexer does not depend on diag.
// The lexer only calls it; the outer layer turns calls into diagnostics.
type Reporter interface {
	Report(kind string, span source.Span, msg string)
}

type Options struct {
	Reporter Reporter // may be nil: errors are ignored, lexing continues
}

func (lx *Lexer) report(kind string, sp source.Span, msg string) {
	lx.failed = true
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(kind, sp, msg)
	}
}
