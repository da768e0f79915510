// Package corpus locates the repository's definitions directory and answers
// existence checks against it. The corpus is read-only as far as this tool
// is concerned.
package corpus

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrRootNotFound indicates that no definitions directory was found in the
// starting directory or any of its parents.
var ErrRootNotFound = errors.New("definitions directory not found")

// Corpus is a handle on an existing definitions directory.
type Corpus struct {
	dir string
}

// New wraps an explicitly configured repository root. The subdirectory must
// exist.
func New(root, subdir string) (*Corpus, error) {
	dir := filepath.Join(root, subdir)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrRootNotFound, dir)
	}
	return &Corpus{dir: dir}, nil
}

// Discover walks upward from startDir until it finds a directory containing
// subdir.
func Discover(startDir, subdir string) (*Corpus, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, subdir)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return &Corpus{dir: candidate}, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, fmt.Errorf("%w: no %q directory above %s", ErrRootNotFound, subdir, startDir)
		}
		dir = parent
	}
}

// Dir returns the definitions directory.
func (c *Corpus) Dir() string {
	return c.dir
}

// Exists reports whether a definition file with the given name is already
// present, and its full path when it is.
func (c *Corpus) Exists(fileName string) (bool, string) {
	path := filepath.Join(c.dir, fileName)
	if _, err := os.Stat(path); err == nil {
		return true, path
	}
	return false, ""
}
