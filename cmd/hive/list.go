package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available puzzles",
	Long: `Shows the built-in puzzles and those found in the puzzle directory.
A file in the directory replaces a built-in puzzle with the same ID.`,
	Args: cobra.NoArgs,
	Run:  runList,
}

func runList(cmd *cobra.Command, args []string) {
	a := mustSetup()
	entries := a.catalog.List()

	if len(entries) == 0 {
		fmt.Println("No puzzles available.")
		return
	}

	fmt.Println("Available puzzles:")
	fmt.Println()

	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, e := range entries {
		maxIDLen = max(maxIDLen, len(e.ID))
		maxNameLen = max(maxNameLen, len(e.Name))
	}

	fmt.Printf("  %-*s  %-*s  %-8s  %5s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Letters", "Words", "Source")
	fmt.Printf("  %-*s  %-*s  %-8s  %5s  %s\n", maxIDLen, "--", maxNameLen, "----", "-------", "-----", "------")

	for _, e := range entries {
		def := a.catalog.Definition(e.ID)
		letters := strings.ToUpper(string(def.Required())) + string(def.Others())
		fmt.Printf("  %-*s  %-*s  %-8s  %5d  %s\n",
			maxIDLen, e.ID, maxNameLen, e.Name, letters, def.TotalWords(), e.Source)
	}

	fmt.Println()
	fmt.Println("Run 'hive play <id>' to play a puzzle.")
}
