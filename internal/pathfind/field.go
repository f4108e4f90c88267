package pathfind

import (
	"github.com/jasminegamedev/pathfinder-demo/internal/core"
)

// FieldCell holds the solved state of one reachable cell.
type FieldCell struct {
	Dist    int        // Steps from the start cell
	Prev    core.Coord // Predecessor on a shortest path; meaningful only if HasPrev
	HasPrev bool       // False only for the start cell
}

// DistanceField maps every cell reachable within budget to its distance and
// predecessor. A nil field means no start was configured when it was
// generated. For every non-start cell the predecessor is also in the field
// with a distance exactly one smaller, so predecessor chains are acyclic and
// terminate at the start.
type DistanceField map[core.Coord]FieldCell

// Contains reports whether the cell is reachable within budget.
func (f DistanceField) Contains(c core.Coord) bool {
	_, ok := f[c]
	return ok
}

// Dist returns the distance of a cell and whether it is in the field.
func (f DistanceField) Dist(c core.Coord) (int, bool) {
	cell, ok := f[c]
	return cell.Dist, ok
}

// MaxDist returns the largest distance present in the field, or 0 if the
// field is empty.
func (f DistanceField) MaxDist() int {
	max := 0
	for _, cell := range f {
		if cell.Dist > max {
			max = cell.Dist
		}
	}
	return max
}

// Equal returns true if two fields contain the same cells with the same
// distances and predecessors.
func (f DistanceField) Equal(other DistanceField) bool {
	if len(f) != len(other) {
		return false
	}
	for c, cell := range f {
		if other[c] != cell {
			return false
		}
	}
	return true
}
