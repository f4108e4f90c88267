package pathfind

import (
	"errors"
	"math"

	"github.com/jasminegamedev/pathfinder-demo/internal/board"
	"github.com/jasminegamedev/pathfinder-demo/internal/core"
)

// ErrUnreachable is returned when a path is requested to a cell that is not
// in the distance field.
var ErrUnreachable = errors.New("pathfind: target not reachable within budget")

// unreached is the tentative-distance sentinel. It compares greater than any
// achievable distance.
const unreached = math.MaxInt

// Generate computes the distance field for the board's start cell and the
// given movement budget. It returns nil when no start is configured; with a
// start and budget 0 the field contains exactly the start cell.
//
// Candidates are scanned in row-major order and ties for the minimum
// tentative distance go to the first candidate found, so repeated calls with
// unchanged inputs produce identical fields, predecessors included.
func Generate(b *board.Board, budget int) DistanceField {
	start, ok := b.Start()
	if !ok {
		return nil
	}

	// Admission filter: open cells inside the Manhattan diamond. Necessary
	// but not sufficient; walls can stretch the walked distance past budget.
	size := b.Size()
	var candidates []core.Coord
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := core.C(x, y)
			if b.Kind(c) == board.Open && start.Manhattan(c) <= budget {
				candidates = append(candidates, c)
			}
		}
	}

	dist := make(map[core.Coord]int, len(candidates))
	prev := make(map[core.Coord]core.Coord, len(candidates))
	unsettled := make(map[core.Coord]bool, len(candidates))
	for _, c := range candidates {
		dist[c] = unreached
		unsettled[c] = true
	}
	dist[start] = 0

	for {
		// Pick the unsettled candidate with the minimum finite tentative
		// distance. When none is left, every remaining candidate is walled
		// off and the search is done, even if the unsettled set is not empty.
		var cur core.Coord
		best := unreached
		found := false
		for _, c := range candidates {
			if unsettled[c] && dist[c] < best {
				cur = c
				best = dist[c]
				found = true
			}
		}
		if !found {
			break
		}
		delete(unsettled, cur)

		for _, d := range core.Dirs() {
			n := cur.Step(d)
			if !unsettled[n] {
				continue
			}
			if best+1 < dist[n] {
				dist[n] = best + 1
				prev[n] = cur
			}
		}
	}

	// Post-filter: the walked distance, not the Manhattan estimate, decides
	// membership.
	field := make(DistanceField, len(candidates))
	for _, c := range candidates {
		d := dist[c]
		if d == unreached || d > budget {
			continue
		}
		cell := FieldCell{Dist: d}
		if p, ok := prev[c]; ok {
			cell.Prev = p
			cell.HasPrev = true
		}
		field[c] = cell
	}
	return field
}

// ReconstructPath walks the predecessor chain from target back to the start
// and returns the ordered start-to-target cell sequence together with its
// total cost. Targets outside the field yield ErrUnreachable. The start cell
// itself reconstructs to a single-cell path of cost 0.
func ReconstructPath(field DistanceField, target core.Coord) ([]core.Coord, int, error) {
	cell, ok := field[target]
	if !ok {
		return nil, 0, ErrUnreachable
	}

	path := make([]core.Coord, 0, cell.Dist+1)
	for c := target; ; {
		path = append(path, c)
		fc := field[c]
		if !fc.HasPrev {
			break
		}
		c = fc.Prev
	}

	// Collected target-first; reverse into start-to-target order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, cell.Dist, nil
}

// Engine retains the most recent distance field for an interactive front
// end. It never invalidates the field on board mutation; callers re-run
// Generate after edits and Clear when stale results must be discarded.
type Engine struct {
	field DistanceField
}

// NewEngine creates an engine with no retained field.
func NewEngine() *Engine {
	return &Engine{}
}

// Generate computes, retains, and returns the field for the given board and
// budget. Any previously retained field is discarded.
func (e *Engine) Generate(b *board.Board, budget int) DistanceField {
	e.field = Generate(b, budget)
	return e.field
}

// Field returns the most recently generated field, or nil after Clear.
func (e *Engine) Field() DistanceField {
	return e.field
}

// Path reconstructs the path to target through the retained field.
func (e *Engine) Path(target core.Coord) ([]core.Coord, int, error) {
	return ReconstructPath(e.field, target)
}

// Clear discards the retained field.
func (e *Engine) Clear() {
	e.field = nil
}
