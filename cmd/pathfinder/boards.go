package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jasminegamedev/pathfinder-demo/internal/boards"
)

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List all available boards",
	Long:  `Shows the embedded default boards plus any boards found in the --boards directory.`,
	Run:   runBoards,
}

func runBoards(cmd *cobra.Command, args []string) {
	docs, err := boards.List(flagBoards)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing boards: %v\n", err)
		os.Exit(1)
	}

	if len(docs) == 0 {
		fmt.Println("No boards available.")
		return
	}

	fmt.Println("Available boards:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, d := range docs {
		if len(d.ID) > maxIDLen {
			maxIDLen = len(d.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-4s  %-6s  %s\n", maxIDLen, "ID", "Size", "Budget", "Name")
	fmt.Printf("  %-*s  %-4s  %-6s  %s\n", maxIDLen, "--", "----", "------", "----")

	for _, d := range docs {
		fmt.Printf("  %-*s  %-4d  %-6d  %s\n", maxIDLen, d.ID, d.Size, d.Budget, d.Name)
	}

	fmt.Println()
	fmt.Println("Run 'pathfinder solve <id>' to compute a distance field.")
}
