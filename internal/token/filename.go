package token

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	spaceRun         = regexp.MustCompile(`\s+`)
	invalidFileChars = regexp.MustCompile(`[^a-z0-9-]`)
	hyphenRun        = regexp.MustCompile(`-{2,}`)
	hyphenBeforeNum  = regexp.MustCompile(`-(\d)`)
)

// FileName derives the definition-file name from a canonical name:
// lowercase ASCII letters, digits, and hyphens only, with the configured
// extension. A canonical name that is itself a registered exception token is
// used verbatim. Returns ErrEmptyName when normalization consumes the whole
// stem.
func (d *Deriver) FileName(canonical string) (string, error) {
	ext := d.table.Extension()
	stem := trimExtension(canonical, ext)

	if d.table.IsExceptionToken(stem) {
		return stem + ext, nil
	}

	s := strings.ToLower(stem)
	for _, sw := range d.table.SymbolWords() {
		s = strings.ReplaceAll(s, sw.Symbol, " "+sw.Word+" ")
	}
	s = spaceRun.ReplaceAllString(s, "-")
	s = invalidFileChars.ReplaceAllString(s, "")
	s = hyphenRun.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	s = hyphenBeforeNum.ReplaceAllString(s, "$1")

	// Spell out a leading digit. Each digit is checked independently in
	// table order; a multi-digit prefix only has its first digit rewritten
	// ("12" becomes "one2").
	for _, dw := range d.table.DigitWords() {
		if strings.HasPrefix(s, dw.Digit) {
			s = dw.Word + s[len(dw.Digit):]
		}
	}

	if s == "" {
		return "", fmt.Errorf("%w from %q", ErrEmptyName, canonical)
	}
	return s + ext, nil
}

// trimExtension removes ext from the end of name, case-insensitively.
func trimExtension(name, ext string) string {
	if strings.HasSuffix(strings.ToLower(name), strings.ToLower(ext)) {
		return name[:len(name)-len(ext)]
	}
	return name
}
