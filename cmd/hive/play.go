package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hive/internal/core"
	"github.com/vovakirdan/hive/internal/puzzle"
	"github.com/vovakirdan/hive/internal/puzzle/catalog"
	"github.com/vovakirdan/hive/internal/platform/tui"
)

var flagFile string

var playCmd = &cobra.Command{
	Use:   "play [puzzle]",
	Short: "Play a puzzle",
	Long: `Start playing the given puzzle, or the configured default.

Controls:
  Letters         - Type a letter from the hive
  Mouse           - Click a tile to type its letter
  Enter           - Submit the word
  Backspace       - Delete the last letter
  Esc             - Clear the word
  Space           - Shuffle the outer letters
  Tab             - Toggle result history
  ?               - Toggle help
  Ctrl+C          - Quit

Examples:
  hive play
  hive play pantry
  hive play --file ./my-puzzle.yaml
  hive play pantry --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFile, "file", "", "Play a puzzle file directly")
}

func runPlay(cmd *cobra.Command, args []string) {
	a := mustSetup()

	var def puzzle.Definition
	switch {
	case flagFile != "":
		raw, err := catalog.LoadFile(flagFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		def = puzzle.LoadOrPlaceholder(raw, a.logger)
	default:
		id := a.cfg.Puzzles.Default
		if len(args) == 1 {
			id = args[0]
		}
		def = a.catalog.Definition(a.entry(id).ID)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := a.openStore()

	// The alternate screen owns the terminal while playing; hold log
	// output until it is gone.
	var logBuf bytes.Buffer
	playLogger := log.NewWithOptions(&logBuf, log.Options{
		ReportTimestamp: true,
		Prefix:          "hive",
		Level:           a.logger.GetLevel(),
	})

	settings := tui.SettingsFrom(a.cfg)
	settings.Runtime = core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: a.cfg.TickRate,
		Seed:     flagSeed,
	}
	settings.Store = store
	settings.Logger = playLogger

	final, runErr := tui.Run(def, settings)

	if store != nil {
		store.Close()
	}
	os.Stderr.Write(logBuf.Bytes())

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running puzzle: %v\n", runErr)
		os.Exit(1)
	}

	printSummary(final)
}

func printSummary(m tui.Model) {
	r := m.Result()
	if r.WordsFound == 0 {
		return
	}
	fmt.Printf("%s: %d/%d points, %d/%d words, %s\n",
		m.Engine().Definition().Name(), r.Score, r.TotalScore, r.WordsFound, r.TotalWords, m.Rank())
}
