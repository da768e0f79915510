package token

import (
	"fmt"
	"strings"

	"github.com/package-naming-project/caskgen/internal/version"
)

// CorpusChecker reports whether a definition file with the given name
// already exists in the corpus, and where.
type CorpusChecker interface {
	Exists(fileName string) (bool, string)
}

// HistoryChecker reports whether a token was generated by an earlier run.
type HistoryChecker interface {
	TokenExists(token string) (bool, error)
}

// Check inspects a derived result for residual digits and collisions with
// the existing corpus or naming history. Warnings are advisory strings for
// the caller to display; Check never fails and never mutates the result.
// corpus and history may be nil, which skips the respective check.
func (d *Deriver) Check(res Result, corpus CorpusChecker, history HistoryChecker) []string {
	var warnings []string

	stem := trimExtension(res.FileName, d.table.Extension())
	if strings.ContainsAny(stem, "0123456789") && !d.table.IsExceptionToken(res.Canonical) {
		if frag := version.FindFragment(stem); frag != "" {
			warnings = append(warnings, fmt.Sprintf(
				"name %q contains digits and %q parses as a version number; a version may have survived normalization",
				stem, frag))
		} else {
			warnings = append(warnings, fmt.Sprintf(
				"name %q contains digits; check for a missed version number", stem))
		}
	}

	if corpus != nil {
		if exists, path := corpus.Exists(res.FileName); exists {
			warnings = append(warnings, fmt.Sprintf(
				"a definition named %q already exists at %s", res.FileName, path))
		}
	}

	if history != nil {
		// A history lookup failure must not block the advisory pass.
		if exists, err := history.TokenExists(stem); err == nil && exists {
			warnings = append(warnings, fmt.Sprintf(
				"name %q was already generated by an earlier run", stem))
		}
	}

	return warnings
}
