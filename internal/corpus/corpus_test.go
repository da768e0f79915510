package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// newTestRepo creates a repository layout with a Casks directory containing
// one definition file, returning the root.
func newTestRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	casks := filepath.Join(root, "Casks")
	if err := os.Mkdir(casks, 0755); err != nil {
		t.Fatalf("failed to create Casks dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(casks, "google-chrome.rb"), []byte("cask\n"), 0644); err != nil {
		t.Fatalf("failed to write definition file: %v", err)
	}
	return root
}

func TestNew(t *testing.T) {
	root := newTestRepo(t)

	c, err := New(root, "Casks")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := c.Dir(); got != filepath.Join(root, "Casks") {
		t.Errorf("Dir() = %q, want %q", got, filepath.Join(root, "Casks"))
	}
}

func TestNewMissing(t *testing.T) {
	if _, err := New(t.TempDir(), "Casks"); !errors.Is(err, ErrRootNotFound) {
		t.Errorf("New() error = %v, want ErrRootNotFound", err)
	}
}

func TestDiscoverFromNestedDirectory(t *testing.T) {
	root := newTestRepo(t)
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	c, err := Discover(nested, "Casks")
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if got := c.Dir(); got != filepath.Join(root, "Casks") {
		t.Errorf("Dir() = %q, want %q", got, filepath.Join(root, "Casks"))
	}
}

func TestDiscoverNotFound(t *testing.T) {
	if _, err := Discover(t.TempDir(), "definitely-not-a-real-subdir"); !errors.Is(err, ErrRootNotFound) {
		t.Errorf("Discover() error = %v, want ErrRootNotFound", err)
	}
}

func TestExists(t *testing.T) {
	root := newTestRepo(t)
	c, err := New(root, "Casks")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	exists, path := c.Exists("google-chrome.rb")
	if !exists {
		t.Fatal("Exists(google-chrome.rb) = false, want true")
	}
	if want := filepath.Join(root, "Casks", "google-chrome.rb"); path != want {
		t.Errorf("Exists() path = %q, want %q", path, want)
	}

	if exists, _ := c.Exists("not-there.rb"); exists {
		t.Error("Exists(not-there.rb) = true, want false")
	}
}
