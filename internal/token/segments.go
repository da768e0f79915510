package token

import (
	"strings"
	"unicode"

	"github.com/package-naming-project/caskgen/internal/patterns"
)

// segment is one word of a candidate name plus the literal separator that
// preceded it in the input. Camel-case boundaries carry an empty separator,
// so rebuilding the segments reproduces the input exactly.
type segment struct {
	sep  string
	text string
}

// segmentName splits a name into word segments at whitespace, underscore,
// hyphen, and camelCase transitions. A trailing preserve token is detached
// first and appended as a single atomic segment so it never gets split.
func segmentName(name string, table *patterns.Table) []segment {
	head, tail := table.DetachPreserved(name)

	var segs []segment
	var text, sep strings.Builder
	var prev rune

	flush := func() {
		if text.Len() > 0 {
			segs = append(segs, segment{sep: sep.String(), text: text.String()})
			text.Reset()
			sep.Reset()
		}
	}

	for _, r := range head {
		switch {
		case unicode.IsSpace(r) || r == '_' || r == '-':
			flush()
			sep.WriteRune(r)
		case isCaseBoundary(prev, r):
			flush()
			text.WriteRune(r)
		default:
			text.WriteRune(r)
		}
		prev = r
	}
	flush()

	if tail != "" {
		segs = append(segs, segment{sep: sep.String(), text: tail})
	}
	return segs
}

func isCaseBoundary(prev, r rune) bool {
	return unicode.IsLower(prev) && unicode.IsUpper(r)
}

// rebuild reassembles the literal name from the remaining segments. The
// leading separator is dropped, which also disposes of leading whitespace.
func rebuild(segs []segment) string {
	var b strings.Builder
	for i, s := range segs {
		if i > 0 {
			b.WriteString(s.sep)
		}
		b.WriteString(s.text)
	}
	return b.String()
}

// viewOf joins the segment texts with single spaces. Strip patterns match
// against this view, never against the literal name.
func viewOf(segs []segment) string {
	texts := make([]string, len(segs))
	for i, s := range segs {
		texts[i] = s.text
	}
	return strings.Join(texts, " ")
}
