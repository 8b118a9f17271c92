// hive is a terminal word puzzle: build words from seven letters, always
// using the center one.
//
// Usage:
//
//	hive list                - List available puzzles
//	hive play [puzzle]       - Play a puzzle
//	hive check <file>...     - Validate puzzle files
//	hive scores [puzzle]     - Show result history
//	hive serve               - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.hive/configs/hive.yaml)
//	--seed <value>      - Shuffle seed for reproducible layouts
//	--db <path>         - Result database (default: ~/.hive/results.db)
//	--puzzles <dir>     - Puzzle directory (default: ~/.hive/puzzles)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hive/internal/config"
	"github.com/vovakirdan/hive/internal/puzzle/catalog"
	"github.com/vovakirdan/hive/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagPuzzles  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hive",
	Short: "Hive - a word puzzle for your terminal",
	Long: `Hive gives you seven letters arranged as a honeycomb. Make words of
four or more letters that always use the center letter. Letters may
repeat. A word that uses all seven letters is a pangram.

Available commands:
  list     - Show all available puzzles
  play     - Play a puzzle
  check    - Validate puzzle files
  scores   - View result history
  serve    - Start SSH server for remote play

Examples:
  hive list
  hive play pantry
  hive check ./puzzles/*.yaml
  hive scores pantry
  hive serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Shuffle seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagPuzzles, "puzzles", "", "Puzzle directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// app bundles what every subcommand needs.
type app struct {
	cfg     config.Config
	logger  *log.Logger
	catalog *catalog.Catalog
}

// newLogger builds the stderr logger for the given level name.
func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "hive",
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", level)
		lvl = log.WarnLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// setup loads the config, applies flag overrides and fills the catalog.
func setup() (*app, error) {
	logger := newLogger(flagLogLevel)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagPuzzles != "" {
		cfg.Puzzles.Dir = flagPuzzles
	}

	cat := catalog.New(logger)
	dir, err := config.ExpandHome(cfg.Puzzles.Dir)
	if err != nil {
		return nil, err
	}
	if err := cat.LoadDir(dir); err != nil {
		// An explicit directory must exist; the default one is optional.
		if flagPuzzles != "" {
			return nil, err
		}
		logger.Debug("puzzle directory not loaded", "dir", dir, "error", err)
	}

	return &app{cfg: cfg, logger: logger, catalog: cat}, nil
}

// mustSetup is setup for commands that cannot continue without it.
func mustSetup() *app {
	a, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return a
}

// openStore opens the result database. Failure is logged and yields nil so
// play can continue without history.
func (a *app) openStore() *storage.Store {
	store, err := storage.Open(a.cfg.Storage.DBPath)
	if err != nil {
		a.logger.Warn("could not open results database", "path", a.cfg.Storage.DBPath, "error", err)
		return nil
	}
	return store
}

// entry resolves a puzzle ID or prints a hint and exits.
func (a *app) entry(id string) catalog.Entry {
	e, ok := a.catalog.Get(id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown puzzle %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'hive list' to see available puzzles.")
		os.Exit(1)
	}
	return e
}
