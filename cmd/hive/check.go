package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hive/internal/puzzle"
	"github.com/vovakirdan/hive/internal/puzzle/catalog"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate puzzle files",
	Long: `Parse and validate puzzle files without playing them. Each file is
reported as OK with its totals, or with the reason it was rejected.
Exits non-zero if any file fails.

Examples:
  hive check ./puzzles/kitchen.yaml
  hive check ./puzzles/*.json`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	failed := 0
	for _, p := range args {
		if err := checkFile(p); err != nil {
			fmt.Printf("FAIL  %s: %v\n", p, err)
			failed++
		}
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d puzzle files failed\n", failed, len(args))
		os.Exit(1)
	}
}

func checkFile(p string) error {
	raw, err := catalog.LoadFile(p)
	if err != nil {
		return err
	}
	def, err := puzzle.Load(raw)
	if err != nil {
		return err
	}
	fmt.Printf("OK    %s: %s, %d words, %d points\n", p, def.Name(), def.TotalWords(), def.TotalScore())
	return nil
}
