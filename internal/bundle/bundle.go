// Package bundle resolves a human-readable display name for an application
// bundle on disk. Four independent metadata locations are probed in order;
// every probe failure degrades silently to the next one, and the original
// path is returned when nothing usable is found.
package bundle

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// Info.plist keys probed for a display name, in precedence order.
const (
	keyDisplayName = "CFBundleDisplayName"
	keyBundleName  = "CFBundleName"
	keyExecutable  = "CFBundleExecutable"
)

var stringsEntry = regexp.MustCompile(`"?CFBundleDisplayName"?\s*=\s*"((?:[^"\\]|\\.)+)"`)

// Resolver probes bundle metadata for a display name.
type Resolver struct {
	runner CommandRunner
}

// NewResolver builds a resolver that reads metadata through the given
// command runner.
func NewResolver(runner CommandRunner) *Resolver {
	return &Resolver{runner: runner}
}

// DisplayName returns the first non-empty ASCII display name found for the
// bundle at path, probing display-name metadata, short-name metadata, the
// localized strings resource, and executable-name metadata in that order.
// The input path is returned unchanged when every probe fails.
func (r *Resolver) DisplayName(ctx context.Context, path string) string {
	probes := []func(context.Context, string) string{
		func(ctx context.Context, p string) string { return r.readInfoKey(ctx, p, keyDisplayName) },
		func(ctx context.Context, p string) string { return r.readInfoKey(ctx, p, keyBundleName) },
		func(_ context.Context, p string) string { return readLocalizedStrings(p) },
		func(ctx context.Context, p string) string { return r.readInfoKey(ctx, p, keyExecutable) },
	}
	for _, probe := range probes {
		if name := probe(ctx, path); name != "" && asciiOnly(name) {
			return name
		}
	}
	return path
}

// readInfoKey shells out to `defaults read` for one Info.plist key. Any
// subprocess error means the probe produced nothing.
func (r *Resolver) readInfoKey(ctx context.Context, path, key string) string {
	plist := filepath.Join(path, "Contents", "Info")
	out, err := r.runner.Run(ctx, "defaults", "read", plist, key)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// readLocalizedStrings scans the English InfoPlist.strings resource for a
// display-name entry. The resource is optional and may be in a binary
// encoding this reader does not understand; both cases degrade to "".
func readLocalizedStrings(path string) string {
	candidates := []string{
		filepath.Join(path, "Contents", "Resources", "en.lproj", "InfoPlist.strings"),
		filepath.Join(path, "Contents", "Resources", "English.lproj", "InfoPlist.strings"),
	}
	for _, file := range candidates {
		data, err := os.ReadFile(file)
		if err != nil {
			continue
		}
		if m := stringsEntry.FindSubmatch(data); m != nil {
			return strings.TrimSpace(string(m[1]))
		}
	}
	return ""
}

func asciiOnly(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}
