// Package version detects version-looking fragments inside derived names.
// It backs the advisory checker: digits that survive normalization usually
// mean a version number slipped through the stripping rules.
package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// IsVersionLike reports whether s can be coerced into a semantic version.
// A leading "v" is tolerated ("v2", "1.2.3", "20.19"). Strings without any
// digit never qualify.
func IsVersionLike(s string) bool {
	s = strings.TrimPrefix(strings.ToLower(s), "v")
	if s == "" || !containsDigit(s) {
		return false
	}
	_, err := semver.NewVersion(s)
	return err == nil
}

// FindFragment returns the first hyphen-separated segment of a file-name
// stem that parses as a version number, or "" when none does.
func FindFragment(stem string) string {
	for _, seg := range strings.Split(stem, "-") {
		if containsDigit(seg) && IsVersionLike(seg) {
			return seg
		}
	}
	return ""
}

func containsDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}
