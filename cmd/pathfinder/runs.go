package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jasminegamedev/pathfinder-demo/internal/config"
	"github.com/jasminegamedev/pathfinder-demo/internal/storage"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recent solve history",
	Long: `Display recent solve runs recorded in the runs database.

Examples:
  pathfinder runs
  pathfinder runs --limit 50`,
	Run: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Maximum number of runs to show")
}

func runRuns(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent solves")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'pathfinder solve <board>' to record the first one.")
		return
	}

	// Print header
	fmt.Printf("  %-12s  %-4s  %-6s  %-9s  %-7s  %s\n", "Board", "Size", "Budget", "Reachable", "MaxDist", "Date")
	fmt.Printf("  %-12s  %-4s  %-6s  %-9s  %-7s  %s\n", "-----", "----", "------", "---------", "-------", "----")

	for _, e := range entries {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-12s  %-4d  %-6d  %-9d  %-7d  %s\n",
			e.BoardID, e.BoardSize, e.Budget, e.Reachable, e.MaxDist, dateStr)
	}
}
