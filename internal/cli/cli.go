package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/package-naming-project/caskgen/internal/bundle"
	"github.com/package-naming-project/caskgen/internal/config"
	"github.com/package-naming-project/caskgen/internal/corpus"
	"github.com/package-naming-project/caskgen/internal/patterns"
	"github.com/package-naming-project/caskgen/internal/storage"
	"github.com/package-naming-project/caskgen/internal/token"
)

// NewApp creates and configures the main CLI application.
func NewApp() *cli.App {
	return &cli.App{
		Name:      "caskgen",
		Usage:     "Derive a canonical definition-file name and identifier from an application name",
		ArgsUsage: "<name-or-bundle-path>",
		Version:   "1.0.0",
		Compiled:  time.Now(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "caskgen.yaml",
				Usage:   "path to overrides configuration file",
				EnvVars: []string{"CASKGEN_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "log level for structured JSON output (debug, info, warn, error)",
				EnvVars: []string{"CASKGEN_LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "also print the intermediate canonical name",
			},
		},
		Action: generate,
	}
}

// generate implements the single derivation command: one positional raw
// name or bundle path in, three name lines out, advisory warnings to stderr
// with a nonzero exit status.
func generate(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("caskgen: exactly one application name or bundle path is required", 2)
	}
	raw := c.Args().First()

	log := NewLogger(ParseLogLevelOrDefault(c.String("log-level")))

	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		log.Error("failed to load config", "error", err)
		return cli.Exit(fmt.Sprintf("caskgen: %v", err), 1)
	}

	table, err := buildTable(cfg)
	if err != nil {
		log.Error("failed to build pattern tables", "error", err)
		return cli.Exit(fmt.Sprintf("caskgen: %v", err), 1)
	}

	resolver := bundle.NewResolver(bundle.NewRealCommandRunner())
	deriver := token.NewDeriver(table, resolver)

	result, err := deriver.Derive(c.Context, raw)
	if err != nil {
		log.Error("name derivation failed", "input", raw, "error", err)
		return cli.Exit(fmt.Sprintf("caskgen: %v", err), 1)
	}

	log.Debug("derived names",
		"input", raw,
		"canonical", result.Canonical,
		"file_name", result.FileName,
		"identifier", result.Identifier)

	printResult(c.App.Writer, result, c.Bool("debug"))

	warnings := deriver.Check(result, openCorpus(cfg, log), openHistory(cfg, log, result, raw))
	if len(warnings) > 0 {
		for _, w := range warnings {
			fmt.Fprintln(c.App.ErrWriter, "warning: "+w)
		}
		return cli.Exit("", 1)
	}
	return nil
}

// printResult writes the derived names to stdout. The canonical name is
// shown only in debug mode; the other two lines are the contract.
func printResult(w io.Writer, result token.Result, debug bool) {
	if debug {
		fmt.Fprintf(w, "canonical name: %s\n", result.Canonical)
	}
	fmt.Fprintln(w, result.FileName)
	fmt.Fprintf(w, "class %s < Cask\n", result.Identifier)
}

// buildTable layers configured overrides over the built-in pattern tables.
func buildTable(cfg *config.Config) (*patterns.Table, error) {
	table := patterns.NewTable()
	table.SetExtension(cfg.Token.Extension)
	for _, e := range cfg.Exceptions {
		if err := table.AddException(e.Pattern, e.Token); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// openCorpus locates the definitions directory for the duplicate check. A
// missing corpus is expected outside a repository checkout and only skips
// the check.
func openCorpus(cfg *config.Config, log *slog.Logger) token.CorpusChecker {
	var (
		corp *corpus.Corpus
		err  error
	)
	if cfg.Corpus.Root != "" {
		corp, err = corpus.New(cfg.Corpus.Root, cfg.Corpus.Subdir)
	} else {
		cwd, cwdErr := os.Getwd()
		if cwdErr != nil {
			log.Debug("skipping corpus check", "error", cwdErr)
			return nil
		}
		corp, err = corpus.Discover(cwd, cfg.Corpus.Subdir)
	}
	if err != nil {
		log.Debug("skipping corpus check", "error", err)
		return nil
	}
	return corp
}

// openHistory consults and updates the opt-in naming-history store. The
// record is written before the duplicate lookup result is returned, but the
// lookup itself runs first so the current run never warns about itself.
func openHistory(cfg *config.Config, log *slog.Logger, result token.Result, raw string) token.HistoryChecker {
	if !cfg.History.Enabled {
		return nil
	}
	db, err := storage.InitDB(storage.Config{
		DatabasePath: cfg.History.DatabasePath,
		LogLevel:     "silent",
	})
	if err != nil {
		log.Warn("naming history unavailable", "error", err)
		return nil
	}
	return &recordingHistory{db: db, log: log, result: result, raw: raw}
}

// recordingHistory answers one TokenExists query and then appends the
// current derivation to the history.
type recordingHistory struct {
	db     *storage.DB
	log    *slog.Logger
	result token.Result
	raw    string
}

func (h *recordingHistory) TokenExists(tok string) (bool, error) {
	defer h.record()
	exists, err := h.db.TokenExists(tok)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (h *recordingHistory) record() {
	err := h.db.RecordToken(&storage.GeneratedToken{
		Token:         strings.TrimSuffix(h.result.FileName, filepath.Ext(h.result.FileName)),
		FileName:      h.result.FileName,
		CanonicalName: h.result.Canonical,
		SourceInput:   h.raw,
	})
	if err != nil {
		// Duplicate tokens violate the unique index; that is exactly the
		// case the advisory already covers.
		h.log.Debug("could not record token in history", "error", err)
	}
	if err := h.db.Close(); err != nil {
		h.log.Warn("failed to close history database", "error", err)
	}
}
