// pathfinder is a CLI for exploring budget-bounded shortest paths on
// editable square boards.
//
// Usage:
//
//	pathfinder boards             - List available boards
//	pathfinder solve <board>      - Compute and print the distance field
//	pathfinder path <board> x y   - Reconstruct the path to a cell
//	pathfinder runs               - Show recent solve history
//
// Global flags:
//
//	--config <path>  - Custom config YAML
//	--boards <dir>   - Directory with extra board files
//	--budget <n>     - Movement budget override (0 = board/config value)
//	--db <path>      - Runs database path (default: ~/.pathfinder/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jasminegamedev/pathfinder-demo/internal/board"
	"github.com/jasminegamedev/pathfinder-demo/internal/boards"
	"github.com/jasminegamedev/pathfinder-demo/internal/config"
	"github.com/jasminegamedev/pathfinder-demo/internal/core"
)

var (
	// Global flags
	flagConfig string
	flagBoards string
	flagBudget int
	flagDBPath string
)

// logger carries warnings and diagnostics; user-facing output goes to stdout.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "pathfinder",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pathfinder",
	Short: "Pathfinder - bounded shortest paths on a grid",
	Long: `Pathfinder computes which cells of a walled board are reachable from a
start cell within a movement budget, and reconstructs shortest paths to
any reachable cell.

Available commands:
  boards   - List available boards
  solve    - Compute the distance field for a board
  path     - Reconstruct the path to a target cell
  runs     - Show recent solve history

Examples:
  pathfinder boards
  pathfinder solve corridor
  pathfinder solve corridor --budget 5
  pathfinder path corridor 4 0
  pathfinder runs`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagBoards, "boards", "", "Directory with extra board files")
	rootCmd.PersistentFlags().IntVar(&flagBudget, "budget", 0, "Movement budget (0 = board/config value)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to runs database (default from config)")

	// Add subcommands
	rootCmd.AddCommand(boardsCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(runsCmd)
}

// loadSetup resolves config, board document, materialized board, and budget
// for the given board ID. The budget is clamped here: range policy belongs
// to the CLI, not the engine.
func loadSetup(boardID string) (config.Config, boards.Document, *board.Board, int, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, boards.Document{}, nil, 0, err
	}

	doc, err := boards.Find(flagBoards, boardID)
	if err != nil {
		return config.Config{}, boards.Document{}, nil, 0, err
	}

	b, err := doc.Board()
	if err != nil {
		return config.Config{}, boards.Document{}, nil, 0, err
	}

	budget := flagBudget
	if budget == 0 {
		budget = doc.Budget
	}
	if budget == 0 {
		budget = cfg.Board.Budget
	}
	budget = core.Clamp(budget, config.MinBudget, config.MaxBudget)

	return cfg, doc, b, budget, nil
}

// dbPath returns the runs database path, preferring the --db flag.
func dbPath(cfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return cfg.Database.Path
}
