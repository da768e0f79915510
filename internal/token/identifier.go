package token

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Identifier derives the PascalCase identifier for a definition file name:
// basename, extension off, hyphen-separated segments capitalized and joined.
// Empty segments contribute nothing.
func Identifier(fileName string) string {
	base := filepath.Base(fileName)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	// cases.Caser carries internal state, so build one per call.
	titleCaser := cases.Title(language.English)

	var b strings.Builder
	for _, seg := range strings.Split(base, "-") {
		if seg == "" {
			continue
		}
		b.WriteString(titleCaser.String(seg))
	}
	return b.String()
}
