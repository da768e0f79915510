// Package config provides configuration management for the name generator.
// It handles an optional YAML overrides file covering the corpus location,
// the definition-file extension, the naming-history store, and extra
// exception entries layered over the built-in table.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for configuration validation
var (
	ErrExtensionFormat     = errors.New("token extension must start with '.'")
	ErrExceptionPattern    = errors.New("exception entry requires a pattern")
	ErrExceptionToken      = errors.New("exception entry requires a token")
	ErrHistoryPathRequired = errors.New("history database_path is required when history is enabled")
)

// Config represents the top-level configuration structure.
type Config struct {
	Corpus     CorpusConfig     `yaml:"corpus"`
	Token      TokenConfig      `yaml:"token"`
	History    HistoryConfig    `yaml:"history"`
	Exceptions []ExceptionEntry `yaml:"exceptions"`
}

// CorpusConfig locates the existing corpus of definition files.
type CorpusConfig struct {
	Root   string `yaml:"root"`   // repository root; discovered upward from CWD when empty
	Subdir string `yaml:"subdir"` // definitions directory under the root
}

// TokenConfig controls derived-name output.
type TokenConfig struct {
	Extension string `yaml:"extension"`
}

// HistoryConfig controls the opt-in naming-history store.
type HistoryConfig struct {
	Enabled      bool   `yaml:"enabled"`
	DatabasePath string `yaml:"database_path"`
}

// ExceptionEntry is one configured raw-name override, merged after the
// built-in exception table.
type ExceptionEntry struct {
	Pattern string `yaml:"pattern"`
	Token   string `yaml:"token"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{Subdir: "Casks"},
		Token:  TokenConfig{Extension: ".rb"},
	}
}

// LoadConfig loads and parses the overrides file. A missing file is not an
// error; defaults apply. A malformed or invalid file is.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filePath, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// Validate validates the configuration structure and required fields.
func (c *Config) Validate() error {
	if c.Token.Extension == "" || !strings.HasPrefix(c.Token.Extension, ".") {
		return ErrExtensionFormat
	}
	if c.Corpus.Subdir == "" {
		c.Corpus.Subdir = "Casks"
	}
	if c.History.Enabled && c.History.DatabasePath == "" {
		return ErrHistoryPathRequired
	}
	for i, e := range c.Exceptions {
		if e.Pattern == "" {
			return fmt.Errorf("exception %d: %w", i, ErrExceptionPattern)
		}
		if e.Token == "" {
			return fmt.Errorf("exception %d: %w", i, ErrExceptionToken)
		}
		if _, err := regexp.Compile(e.Pattern); err != nil {
			return fmt.Errorf("exception %d: invalid pattern %q: %w", i, e.Pattern, err)
		}
	}
	return nil
}
