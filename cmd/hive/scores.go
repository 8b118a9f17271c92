package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hive/internal/platform/tui"
	"github.com/vovakirdan/hive/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [puzzle]",
	Short: "Show result history",
	Long: `Display the best recorded results for a puzzle, or a summary of
every puzzle played when none is given.

Examples:
  hive scores
  hive scores pantry
  hive scores pantry --interactive
  hive scores pantry --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse history in a full-screen view")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded results for the puzzle")
}

func runScores(cmd *cobra.Command, args []string) {
	a := mustSetup()

	store, err := storage.Open(a.cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	puzzleID := ""
	if len(args) == 1 {
		puzzleID = a.entry(args[0]).ID
	}

	switch {
	case flagInteractive:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, a.catalog.List(), puzzleID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case flagClear:
		if puzzleID == "" {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a puzzle ID")
			os.Exit(1)
		}
		if err := store.ClearResults(puzzleID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared results for %s\n", puzzleID)

	case puzzleID == "":
		printStats(store)

	default:
		printTop(store, puzzleID, a.entry(puzzleID).Name)
	}
}

func printTop(store *storage.Store, puzzleID, name string) {
	results, err := store.TopResults(puzzleID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Results - %s\n", name)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'hive play %s' to record the first one!\n", puzzleID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Words", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "----", "-----", "-----", "----")

	for i, r := range results {
		fmt.Printf("  %-4d  %-10s  %-8s  %s\n", i+1,
			fmt.Sprintf("%d/%d", r.Score, r.TotalScore),
			fmt.Sprintf("%d/%d", r.WordsFound, r.TotalWords),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.BestScore(puzzleID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}

func printStats(store *storage.Store) {
	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}
	if len(stats) == 0 {
		fmt.Println("No results recorded yet.")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-16s  %8s  %6s  %7s  %5s  %s\n", "Puzzle", "Sessions", "Best", "Average", "Words", "Last played")
	fmt.Printf("  %-16s  %8s  %6s  %7s  %5s  %s\n", "------", "--------", "----", "-------", "-----", "-----------")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-16s  %8d  %6d  %7.1f  %5d  %s\n",
			id, s.Sessions, s.BestScore, s.AvgScore, s.MostWords, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
