package token

import (
	"errors"
	"regexp"
	"testing"
)

func TestFileName(t *testing.T) {
	d := newTestDeriver(t)

	tests := []struct {
		name      string
		canonical string
		want      string
	}{
		{"simple", "Google Chrome", "google-chrome.rb"},
		{"leading digit spelled out", "7-Zip", "seven-zip.rb"},
		{"exception token verbatim", "iterm2", "iterm2.rb"},
		{"exception token keeps leading digit", "1password", "1password.rb"},
		{"symbol spelled out", "C++", "c-plus-plus.rb"},
		{"at symbol", "Mail@Work", "mail-at-work.rb"},
		{"interior hyphen kept", "App-Pro", "app-pro.rb"},
		{"punctuation deleted", "Mr. Reader", "mr-reader.rb"},
		{"hyphen before digit removed", "My App 2.0", "my-app20.rb"},
		{"multiple spaces collapsed", "Big   Name", "big-name.rb"},
		{"extension already present", "google-chrome.rb", "google-chrome.rb"},
		{"leading number one2", "12 Notes", "one2-notes.rb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.FileName(tt.canonical)
			if err != nil {
				t.Fatalf("FileName(%q) error = %v", tt.canonical, err)
			}
			if got != tt.want {
				t.Errorf("FileName(%q) = %q, want %q", tt.canonical, got, tt.want)
			}
		})
	}
}

func TestFileNameCharsetInvariant(t *testing.T) {
	d := newTestDeriver(t)
	valid := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*\.rb$`)

	inputs := []string{
		"Google Chrome",
		"7-Zip",
		"C++",
		"Mr. Reader",
		"My App 2.0",
		"  odd   spacing  here ",
		"MiXeD CaSe NaMe",
		"trailing plus+",
	}

	for _, input := range inputs {
		got, err := d.FileName(input)
		if err != nil {
			t.Fatalf("FileName(%q) error = %v", input, err)
		}
		if !valid.MatchString(got) {
			t.Errorf("FileName(%q) = %q, violates charset invariant", input, got)
		}
	}
}

func TestFileNameEmptyStem(t *testing.T) {
	d := newTestDeriver(t)

	for _, input := range []string{"", "???", "!!!", "---"} {
		_, err := d.FileName(input)
		if !errors.Is(err, ErrEmptyName) {
			t.Errorf("FileName(%q) error = %v, want ErrEmptyName", input, err)
		}
	}
}

func TestFileNameIdempotent(t *testing.T) {
	d := newTestDeriver(t)

	once, err := d.FileName("Google Chrome")
	if err != nil {
		t.Fatalf("FileName() error = %v", err)
	}
	twice, err := d.FileName(once)
	if err != nil {
		t.Fatalf("FileName() error = %v", err)
	}
	if once != twice {
		t.Errorf("FileName not idempotent: first %q, second %q", once, twice)
	}
}

func TestFileNameCustomExtension(t *testing.T) {
	d := newTestDeriver(t)
	d.table.SetExtension(".yaml")

	got, err := d.FileName("Google Chrome")
	if err != nil {
		t.Fatalf("FileName() error = %v", err)
	}
	if got != "google-chrome.yaml" {
		t.Errorf("FileName() = %q, want google-chrome.yaml", got)
	}
}
