// Package token implements the three-stage name-normalization pipeline:
// raw application name -> canonical name -> definition file name ->
// identifier. The stages are order-sensitive; see Canonicalize for the
// documented sequence.
package token

import (
	"context"
	"errors"
	"os"
	"unicode"

	"github.com/package-naming-project/caskgen/internal/patterns"
)

// ErrEmptyName signals that normalization consumed the entire name. This is
// the only fatal derivation failure; everything else degrades to the most
// recent valid string.
var ErrEmptyName = errors.New("could not determine a name")

// DisplayNameResolver returns a best-effort human-readable name for an
// application bundle path, or the input unchanged if none is found.
type DisplayNameResolver interface {
	DisplayName(ctx context.Context, path string) string
}

// Result carries the names derived from a single raw input.
type Result struct {
	Canonical  string
	FileName   string
	Identifier string
}

// Deriver runs the pipeline against a pattern table. Derived names are
// memoized per raw input for the remainder of a run. Not safe for
// concurrent use; each invocation processes exactly one input name.
type Deriver struct {
	table    *patterns.Table
	resolver DisplayNameResolver

	canonical map[string]string
	results   map[string]Result
}

// NewDeriver builds a pipeline over the given tables. resolver may be nil,
// in which case display-name substitution is skipped.
func NewDeriver(table *patterns.Table, resolver DisplayNameResolver) *Deriver {
	return &Deriver{
		table:     table,
		resolver:  resolver,
		canonical: make(map[string]string),
		results:   make(map[string]Result),
	}
}

// Derive computes all three names for a raw input, memoizing the result.
func (d *Deriver) Derive(ctx context.Context, raw string) (Result, error) {
	if res, ok := d.results[raw]; ok {
		return res, nil
	}

	canonical := d.Canonicalize(ctx, raw)
	fileName, err := d.FileName(canonical)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Canonical:  canonical,
		FileName:   fileName,
		Identifier: Identifier(fileName),
	}
	d.results[raw] = res
	return res, nil
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
