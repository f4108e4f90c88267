package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jasminegamedev/pathfinder-demo/internal/pathfind"
	"github.com/jasminegamedev/pathfinder-demo/internal/storage"
)

var solveCmd = &cobra.Command{
	Use:   "solve <board>",
	Short: "Compute the distance field for a board",
	Long: `Run the bounded shortest-path search from the board's start cell and
print the distance overlay: 'S' start, '#' walls, digits for reachable
cells (distance mod 10), '.' for open cells outside the budget.

Examples:
  pathfinder solve corridor
  pathfinder solve corridor --budget 5
  pathfinder solve mymap --boards ./boards`,
	Args: cobra.ExactArgs(1),
	Run:  runSolve,
}

func runSolve(cmd *cobra.Command, args []string) {
	cfg, doc, b, budget, err := loadSetup(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'pathfinder boards' to see available boards.")
		os.Exit(1)
	}

	field := pathfind.Generate(b, budget)
	if field == nil {
		fmt.Fprintf(os.Stderr, "Error: board %q has no start cell\n", doc.ID)
		os.Exit(1)
	}

	fmt.Printf("%s (size %d, budget %d)\n", doc.Name, doc.Size, budget)
	fmt.Println()
	fmt.Print(pathfind.RenderField(b, field))
	fmt.Println()
	fmt.Printf("Reachable: %d of %d open cells, farthest at distance %d\n",
		len(field), b.OpenCount(), field.MaxDist())

	// Record the run. Storage problems are warnings, not failures; the
	// solve output is already on screen.
	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		return
	}
	defer store.Close()

	entry := storage.RunEntry{
		BoardID:   doc.ID,
		BoardSize: doc.Size,
		Budget:    budget,
		Reachable: len(field),
		MaxDist:   field.MaxDist(),
	}
	if _, err := store.SaveRun(entry); err != nil {
		logger.Warn("could not record run", "error", err)
	}
}
