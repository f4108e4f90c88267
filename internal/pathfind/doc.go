// Package pathfind computes budget-bounded shortest paths over a board.
//
// Generate runs a bounded Dijkstra search from the board's start cell:
// candidate cells are pre-filtered by Manhattan distance against the
// movement budget, relaxed over 4-directional unit steps, and post-filtered
// by their actual walked distance. The pre-filter is a deliberate
// under-approximation: a cell outside the Manhattan diamond is never
// admitted, even when a detour around walls could still reach it within
// budget. Reachable-cell highlighting depends on that exact behavior, so it
// is kept rather than corrected.
//
// The resulting DistanceField maps each reachable cell to its distance and
// predecessor; ReconstructPath walks predecessors back to the start.
// Generate is a pure function of (board, budget); Engine adds the small
// retained-field surface the interactive front end drives.
package pathfind
