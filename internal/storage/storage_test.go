package storage

import (
	"errors"
	"testing"
	"time"
)

// newTestDB creates an in-memory SQLite database for testing
func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := InitDB(Config{
		DatabasePath: ":memory:",
		LogLevel:     "silent",
	})
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	return db
}

// createTestToken creates a GeneratedToken with default test values
func createTestToken(token string) *GeneratedToken {
	return &GeneratedToken{
		Token:         token,
		FileName:      token + ".rb",
		CanonicalName: "Google Chrome",
		SourceInput:   "Google Chrome.app",
		GeneratedAt:   time.Now(),
	}
}

func TestRecordToken(t *testing.T) {
	db := newTestDB(t)

	if err := db.RecordToken(createTestToken("google-chrome")); err != nil {
		t.Fatalf("RecordToken() error = %v", err)
	}

	record, err := db.GetToken("google-chrome")
	if err != nil {
		t.Fatalf("GetToken() error = %v", err)
	}
	if record.FileName != "google-chrome.rb" {
		t.Errorf("FileName = %q, want google-chrome.rb", record.FileName)
	}
	if record.CanonicalName != "Google Chrome" {
		t.Errorf("CanonicalName = %q, want Google Chrome", record.CanonicalName)
	}
}

func TestRecordTokenNil(t *testing.T) {
	db := newTestDB(t)

	if err := db.RecordToken(nil); !errors.Is(err, ErrNilToken) {
		t.Errorf("RecordToken(nil) error = %v, want ErrNilToken", err)
	}
}

func TestRecordTokenDuplicate(t *testing.T) {
	db := newTestDB(t)

	if err := db.RecordToken(createTestToken("slack")); err != nil {
		t.Fatalf("RecordToken() error = %v", err)
	}
	if err := db.RecordToken(createTestToken("slack")); err == nil {
		t.Error("RecordToken(duplicate) error = nil, want unique-constraint error")
	}
}

func TestRecordTokenDefaultsGeneratedAt(t *testing.T) {
	db := newTestDB(t)

	record := createTestToken("firefox")
	record.GeneratedAt = time.Time{}
	if err := db.RecordToken(record); err != nil {
		t.Fatalf("RecordToken() error = %v", err)
	}

	stored, err := db.GetToken("firefox")
	if err != nil {
		t.Fatalf("GetToken() error = %v", err)
	}
	if stored.GeneratedAt.IsZero() {
		t.Error("GeneratedAt was not defaulted")
	}
}

func TestGetTokenNotFound(t *testing.T) {
	db := newTestDB(t)

	if _, err := db.GetToken("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetToken(missing) error = %v, want ErrNotFound", err)
	}
}

func TestTokenExists(t *testing.T) {
	db := newTestDB(t)

	exists, err := db.TokenExists("slack")
	if err != nil {
		t.Fatalf("TokenExists() error = %v", err)
	}
	if exists {
		t.Error("TokenExists(slack) = true before recording")
	}

	if err := db.RecordToken(createTestToken("slack")); err != nil {
		t.Fatalf("RecordToken() error = %v", err)
	}

	exists, err = db.TokenExists("slack")
	if err != nil {
		t.Fatalf("TokenExists() error = %v", err)
	}
	if !exists {
		t.Error("TokenExists(slack) = false after recording")
	}
}

func TestListAll(t *testing.T) {
	db := newTestDB(t)

	for _, token := range []string{"alpha-one", "beta-two", "gamma-three"} {
		if err := db.RecordToken(createTestToken(token)); err != nil {
			t.Fatalf("RecordToken(%s) error = %v", token, err)
		}
	}

	records, err := db.ListAll()
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if got := len(records); got != 3 {
		t.Errorf("ListAll() count = %d, want 3", got)
	}
}
