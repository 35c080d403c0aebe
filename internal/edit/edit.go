// Package edit applies batches of line-scoped rewrite instructions.
// Edits are collected during a tree walk and applied afterwards in
// descending line order, so earlier offsets stay valid throughout.
package edit

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNoEdits is returned when a batch contains nothing to apply.
var ErrNoEdits = errors.New("no applicable edits")

// Edit replaces the inclusive 1-based line range [StartLine, EndLine]
// with Replacement (which may hold any number of lines, including zero).
type Edit struct {
	StartLine   int
	EndLine     int
	Replacement []string
}

// Replace builds an edit replacing [start, end] with the given lines.
func Replace(start, end int, lines ...string) Edit {
	return Edit{StartLine: start, EndLine: end, Replacement: lines}
}

// Delete builds an edit removing [start, end] entirely.
func Delete(start, end int) Edit {
	return Edit{StartLine: start, EndLine: end}
}

// conflict reports whether two edits touch a common line.
func conflict(a, b Edit) bool {
	return a.StartLine <= b.EndLine && b.StartLine <= a.EndLine
}

// Apply splices edits into lines, highest line number first. Edits
// from a single pass must not overlap; an out-of-range or overlapping
// batch fails wholesale without modifying anything.
func Apply(lines []string, edits []Edit) ([]string, error) {
	if len(edits) == 0 {
		return lines, ErrNoEdits
	}

	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].StartLine != sorted[j].StartLine {
			return sorted[i].StartLine > sorted[j].StartLine
		}
		return sorted[i].EndLine > sorted[j].EndLine
	})

	for i, e := range sorted {
		if e.StartLine < 1 || e.EndLine < e.StartLine || e.EndLine > len(lines) {
			return nil, fmt.Errorf("edit: line range %d-%d out of bounds (1-%d)", e.StartLine, e.EndLine, len(lines))
		}
		if i > 0 && conflict(sorted[i-1], e) {
			return nil, fmt.Errorf("edit: ranges %d-%d and %d-%d overlap",
				e.StartLine, e.EndLine, sorted[i-1].StartLine, sorted[i-1].EndLine)
		}
	}

	out := make([]string, len(lines))
	copy(out, lines)
	for _, e := range sorted {
		merged := make([]string, 0, e.StartLine-1+len(e.Replacement)+len(out)-e.EndLine)
		merged = append(merged, out[:e.StartLine-1]...)
		merged = append(merged, e.Replacement...)
		merged = append(merged, out[e.EndLine:]...)
		out = merged
	}
	return out, nil
}

// ApplyToText is Apply over a newline-joined buffer.
func ApplyToText(text string, edits []Edit) (string, error) {
	lines := strings.Split(text, "\n")
	out, err := Apply(lines, edits)
	if err != nil {
		return text, err
	}
	return strings.Join(out, "\n"), nil
}
