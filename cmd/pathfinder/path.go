package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jasminegamedev/pathfinder-demo/internal/core"
	"github.com/jasminegamedev/pathfinder-demo/internal/pathfind"
)

var pathCmd = &cobra.Command{
	Use:   "path <board> <x> <y>",
	Short: "Reconstruct the path to a target cell",
	Long: `Solve the board and walk the predecessor chain from the target cell
back to the start. Prints the path overlay and the ordered cell sequence.

Examples:
  pathfinder path corridor 4 0
  pathfinder path open 0 0 --budget 4`,
	Args: cobra.ExactArgs(3),
	Run:  runPath,
}

func runPath(cmd *cobra.Command, args []string) {
	x, errX := strconv.Atoi(args[1])
	y, errY := strconv.Atoi(args[2])
	if errX != nil || errY != nil {
		fmt.Fprintf(os.Stderr, "Error: target must be two integers, got %q %q\n", args[1], args[2])
		os.Exit(1)
	}
	target := core.C(x, y)

	_, doc, b, budget, err := loadSetup(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'pathfinder boards' to see available boards.")
		os.Exit(1)
	}

	engine := pathfind.NewEngine()
	field := engine.Generate(b, budget)
	if field == nil {
		fmt.Fprintf(os.Stderr, "Error: board %q has no start cell\n", doc.ID)
		os.Exit(1)
	}

	path, cost, err := engine.Path(target)
	if errors.Is(err, pathfind.ErrUnreachable) {
		fmt.Fprintf(os.Stderr, "Cell %v is not reachable within budget %d.\n", target, budget)
		os.Exit(1)
	}

	fmt.Printf("%s: path to %v, cost %d\n", doc.Name, target, cost)
	fmt.Println()
	fmt.Print(pathfind.RenderPath(b, path))
	fmt.Println()
	for i, c := range path {
		if i > 0 {
			fmt.Print(" -> ")
		}
		fmt.Print(c)
	}
	fmt.Println()
}
