package source

import (
	"path/filepath"
	"slices"
)

// normalizeCRLF rewrites every \r\n to \n, leaving lone \r untouched.
// The second result reports whether anything changed.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false

	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}

	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}

	return content, false
}

// buildLineIndex records the byte offset of every \n in content.
func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, len(content)/32)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

// toLineCol maps a byte offset to a 1-based line/column pair using the
// newline index. A newline byte belongs to the line it terminates.
func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// Binary search: count of newlines strictly before off.
	lo, hi := 0, len(lineIdx)
	for lo < hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	line := lo // 0-based line index

	var startOff uint32
	if line > 0 {
		startOff = lineIdx[line-1] + 1
	}

	return LineCol{Line: uint32(line + 1), Col: off - startOff + 1}
}

func normalizePath(p string) string {
	// Keeps cross-platform diffs uniform.
	return filepath.ToSlash(filepath.Clean(p))
}

// RelativePath renders target relative to baseDir, falling back to the
// normalized absolute path when target lies outside baseDir.
func RelativePath(target, baseDir string) (string, error) {
	rel, err := filepath.Rel(baseDir, target)
	if err != nil {
		return normalizePath(target), nil
	}
	if len(rel) >= 2 && rel[0] == '.' && rel[1] == '.' {
		return normalizePath(target), nil
	}
	return filepath.ToSlash(rel), nil
}
