package format

// Indent is the grammar-free entry point: normalize newlines, expand
// tabs, repair block structure heuristically, reconstruct indentation,
// and tidy trailing whitespace. Total; works on broken input.
func Indent(text string, indentWidth int) string {
	if indentWidth <= 0 {
		indentWidth = DefaultSettings().IndentWidth
	}
	code := Normalize(text)
	code = Detab(code, indentWidth)
	code = RepairBlocks(code, indentWidth)
	code = Reindent(code, indentWidth)
	return finish(code)
}
