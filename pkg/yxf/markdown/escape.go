package markdown

import "strings"

var cellEscaper = strings.NewReplacer(`\`, `\\`, `|`, `\|`)

// escapeCell doubles backslashes and escapes pipes in a single pass.
func escapeCell(s string) string {
	return cellEscaper.Replace(s)
}

// unescapeCell reverses escapeCell. Other backslash sequences are kept.
func unescapeCell(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && (s[i+1] == '\\' || s[i+1] == '|') {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
