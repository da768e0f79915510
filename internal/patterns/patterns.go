// Package patterns holds the static naming tables consulted by the token
// derivers: the hand-curated exception table, the trailing-removal and
// preserve pattern sets, the interior-version word list, and the symbol and
// digit spelling tables. A Table is built once at startup and treated as
// immutable afterwards.
package patterns

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultExtension is the file extension appended to every definition file.
const DefaultExtension = ".rb"

// Sentinel errors for table construction
var (
	ErrEmptyPattern = fmt.Errorf("exception pattern cannot be empty")
	ErrEmptyToken   = fmt.Errorf("exception token cannot be empty")
)

// Exception maps an anchored, case-insensitive raw-name pattern to a
// hand-curated literal token. The first matching entry wins and overrides
// every derived stripping rule.
type Exception struct {
	Pattern *regexp.Regexp
	Token   string
}

// SymbolWord spells out a symbol that would otherwise be deleted during
// file-name derivation.
type SymbolWord struct {
	Symbol string
	Word   string
}

// DigitWord spells out a single leading digit in a file-name stem.
type DigitWord struct {
	Digit string
	Word  string
}

// Table bundles every compiled pattern the derivers consult.
type Table struct {
	extension string

	exceptions    []Exception
	exceptionSet  map[string]struct{}
	trailingStrip []*regexp.Regexp
	preserve      []*regexp.Regexp
	interior      *regexp.Regexp
	symbolWords   []SymbolWord
	digitWords    []DigitWord
}

// Names that defy the automatic rules: numeric tokens that are not version
// numbers, compound marketing names, and camel-cased names that contain a
// generic word the stripper would otherwise remove.
var defaultExceptions = []struct {
	pattern string
	token   string
}{
	{`iterm ?2?`, "iterm2"},
	{`whats ?app(?: messenger)?`, "whatsapp"},
	{`(?:µ|u)?torrent`, "utorrent"},
	{`1 ?password(?: \d+)?`, "1password"},
	{`adobe acrobat reader(?: dc)?`, "adobe-acrobat-reader"},
	{`kid ?3`, "kid3"},
	{`sketch ?up(?: make)?(?: \d+)?`, "sketchup"},
}

// Suffix patterns eligible for iterative stripping. Each is matched against
// the space-joined segment view of the candidate name, case-insensitively,
// anchored at the end. Declaration order is load-bearing.
var defaultTrailingStrip = []string{
	// generic words
	`app(?:lication)?`,
	`desktop`,
	// platform qualifiers
	`(?:for )?(?:mac ?os(?: ?x)?|os ?x|mac(?:os)?)`,
	// architecture qualifiers
	`(?:for )?(?:x86[-_ ]?64|x86|i386|ppc|(?:32|64)[-_ ]?bit)`,
	// framework qualifiers
	`(?:for )?(?:java|gtk\+?|qt|wx(?:widgets)?|cocoa)`,
	// locale qualifiers, en-US shapes; hyphens and underscores appear as
	// spaces in the segment view
	`[a-z]{2}[-_ ][a-z]{2}`,
	// release-stage qualifiers
	`(?:alpha|beta|rc ?\d*|release candidate)`,
	// version shapes: "v1.2", "Version 3", "1.2.3", "2b"
	`(?:version |v ?)?\d+(?:[._]\d+)*[a-z]?`,
	`build \d+`,
	`r\d+`,
}

// Domain terms that merely look like version fragments. A match against the
// current full name blocks any further trailing stripping.
var defaultPreserve = []string{
	`mp3`,
	`id3`,
	`diff3`,
	`3 ?d`,
	`x11`,
}

// Words allowed immediately after an interior version number. "App 2.0 Pro"
// collapses to "App-Pro".
var defaultInteriorWords = []string{
	"pro",
	"server",
	"viewer",
	"launcher",
	"installer",
	"client",
	"ce",
	"host",
}

// NewTable compiles the built-in tables.
func NewTable() *Table {
	t := &Table{
		extension:    DefaultExtension,
		exceptionSet: make(map[string]struct{}),
		symbolWords: []SymbolWord{
			{Symbol: "+", Word: "plus"},
			{Symbol: "@", Word: "at"},
			{Symbol: "&", Word: "and"},
		},
		digitWords: []DigitWord{
			{Digit: "0", Word: "zero"},
			{Digit: "1", Word: "one"},
			{Digit: "2", Word: "two"},
			{Digit: "3", Word: "three"},
			{Digit: "4", Word: "four"},
			{Digit: "5", Word: "five"},
			{Digit: "6", Word: "six"},
			{Digit: "7", Word: "seven"},
			{Digit: "8", Word: "eight"},
			{Digit: "9", Word: "nine"},
		},
	}

	for _, e := range defaultExceptions {
		// Built-in patterns are compile-checked by the test suite.
		t.exceptions = append(t.exceptions, Exception{
			Pattern: regexp.MustCompile(`(?i)^(?:` + e.pattern + `)$`),
			Token:   e.token,
		})
		t.exceptionSet[e.token] = struct{}{}
	}
	for _, p := range defaultTrailingStrip {
		t.trailingStrip = append(t.trailingStrip, regexp.MustCompile(`(?i)(?:^|[ ])(?:`+p+`)$`))
	}
	for _, p := range defaultPreserve {
		t.preserve = append(t.preserve, regexp.MustCompile(`(?i)(?:`+p+`)$`))
	}
	t.interior = regexp.MustCompile(
		`(?i)\s+v?\d+(?:\.\d+)*[a-z]?\s+(` + strings.Join(defaultInteriorWords, "|") + `)\b`)

	return t
}

// SetExtension overrides the definition-file extension. The value must
// already be validated (non-empty, leading dot).
func (t *Table) SetExtension(ext string) {
	t.extension = ext
}

// Extension returns the definition-file extension, including the dot.
func (t *Table) Extension() string {
	return t.extension
}

// AddException appends a configured exception entry after the built-in ones.
func (t *Table) AddException(pattern, token string) error {
	if pattern == "" {
		return ErrEmptyPattern
	}
	if token == "" {
		return ErrEmptyToken
	}
	re, err := regexp.Compile(`(?i)^(?:` + pattern + `)$`)
	if err != nil {
		return fmt.Errorf("invalid exception pattern %q: %w", pattern, err)
	}
	t.exceptions = append(t.exceptions, Exception{Pattern: re, Token: token})
	t.exceptionSet[token] = struct{}{}
	return nil
}

// ExceptionFor returns the hand-curated token for a name, if one exists.
// Entries are scanned in declaration order; the first match wins.
func (t *Table) ExceptionFor(name string) (string, bool) {
	for _, e := range t.exceptions {
		if e.Pattern.MatchString(name) {
			return e.Token, true
		}
	}
	return "", false
}

// IsExceptionToken reports whether s is one of the literal override values.
// Such tokens are already conventionally correct and bypass file-name
// normalization.
func (t *Table) IsExceptionToken(s string) bool {
	_, ok := t.exceptionSet[s]
	return ok
}

// TrailingStrip returns the ordered suffix patterns eligible for stripping.
func (t *Table) TrailingStrip() []*regexp.Regexp {
	return t.trailingStrip
}

// MatchesPreserve reports whether the current full name ends in a preserve
// token, which blocks all trailing stripping.
func (t *Table) MatchesPreserve(name string) bool {
	for _, re := range t.preserve {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// DetachPreserved splits a trailing preserve token off a name so that
// segmentation never breaks it apart. The second return is empty when no
// preserve token matches.
func (t *Table) DetachPreserved(name string) (head, tail string) {
	for _, re := range t.preserve {
		if loc := re.FindStringIndex(name); loc != nil {
			return name[:loc[0]], name[loc[0]:]
		}
	}
	return name, ""
}

// StripInteriorVersion removes a version fragment that sits immediately
// before an allowed word, joining the survivors with a hyphen:
// "App 2.0 Pro" becomes "App-Pro".
func (t *Table) StripInteriorVersion(name string) string {
	return t.interior.ReplaceAllString(name, "-$1")
}

// SymbolWords returns the ordered symbol spelling table.
func (t *Table) SymbolWords() []SymbolWord {
	return t.symbolWords
}

// DigitWords returns the digit spelling table in digit order.
func (t *Table) DigitWords() []DigitWord {
	return t.digitWords
}
