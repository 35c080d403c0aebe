package diag

// Severity ranks how strongly a diagnostic should block a rewrite.
// Gated transforms refuse to touch a buffer once an error-level
// diagnostic exists; anything below that is advisory.
type Severity uint8

const (
	// SevInfo annotates a site without claiming anything is wrong,
	// e.g. the secondary notes attached to a bracket mismatch.
	SevInfo Severity = iota
	// SevWarning flags suspect input the formatter still accepts.
	SevWarning
	// SevError marks input rejected by the parse gate.
	SevError
)

// String returns the upper-case label the pretty renderer prints
// between position and code.
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
