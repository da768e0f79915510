package token

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var bundleExtension = regexp.MustCompile(`(?i)\.app$`)

// Canonicalize derives the single agreed-upon human-readable name for a
// package from a raw name or bundle path. The step order is load-bearing:
//
//  1. display-name substitution (non-ASCII existing paths only),
//  2. basename for existing paths,
//  3. best-effort ASCII compatibility decomposition,
//  4. bundle extension removal,
//  5. exception override, which short-circuits,
//  6. trailing-pattern stripping to a fixpoint, guarded by the preserve
//     patterns,
//  7. interior version removal.
//
// An empty result is not corrected here; FileName reports it as an error.
func (d *Deriver) Canonicalize(ctx context.Context, raw string) string {
	if name, ok := d.canonical[raw]; ok {
		return name
	}

	name := strings.TrimSpace(raw)

	// A bundle's display-name metadata never carries an extension, so the
	// substitution has to happen before basename and extension handling.
	if !isASCII(name) && pathExists(name) && d.resolver != nil {
		if s := d.resolver.DisplayName(ctx, name); s != "" && isASCII(s) {
			name = s
		}
	}

	if pathExists(name) {
		name = filepath.Base(name)
	}

	if !isASCII(name) {
		name = asciiDecompose(name)
	}

	name = bundleExtension.ReplaceAllString(name, "")

	// Exceptions can contain digits that the stripping rules would eat, so
	// the lookup must come first and skip everything below.
	if token, ok := d.table.ExceptionFor(name); ok {
		d.canonical[raw] = token
		return token
	}

	name = d.stripTrailing(name)
	name = d.table.StripInteriorVersion(name)

	d.canonical[raw] = name
	return name
}

// asciiDecompose applies a compatibility decomposition to extended Latin
// characters and discards whatever has no ASCII decomposition. Lossy by
// design of the convention; an input that cannot be made ASCII-only at all
// is returned unchanged rather than erroring.
func asciiDecompose(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	decomposed, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	cleaned := strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, decomposed)
	if strings.TrimSpace(cleaned) == "" {
		return s
	}
	return cleaned
}

// stripTrailing repeatedly removes qualifier and version suffixes until no
// pattern applies or a preserve token blocks further removal. Matching
// happens over an explicit segment view so that camelCase and snake_case
// names expose their word boundaries without altering the literal output.
func (d *Deriver) stripTrailing(name string) string {
	segs := segmentName(name, d.table)
	for {
		current := rebuild(segs)
		if current == "" {
			return current
		}
		if d.table.MatchesPreserve(current) {
			return current
		}
		n := d.matchTrailing(viewOf(segs))
		if n == 0 {
			return current
		}
		segs = segs[:len(segs)-n]
	}
}

// matchTrailing returns how many trailing segments the first matching strip
// pattern covers, or zero. Patterns require a segment boundary before the
// match, so a match never splits a word.
func (d *Deriver) matchTrailing(view string) int {
	for _, re := range d.table.TrailingStrip() {
		loc := re.FindStringIndex(view)
		if loc == nil {
			continue
		}
		matched := view[loc[0]:]
		if loc[0] > 0 {
			// The leading byte is the consumed boundary space.
			matched = matched[1:]
		}
		if matched == "" {
			continue
		}
		return strings.Count(matched, " ") + 1
	}
	return 0
}
