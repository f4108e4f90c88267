// Package board implements the editable square grid the pathfinder runs on.
// A board owns per-cell passability (open or wall) and an optional start
// cell. The editing surface mutates it freely; the engine only reads it.
package board

import (
	"github.com/jasminegamedev/pathfinder-demo/internal/core"
)

// CellKind classifies a board position.
type CellKind int

const (
	Open CellKind = iota
	Wall
	OutOfBounds
)

// String returns the string representation of a cell kind.
func (k CellKind) String() string {
	switch k {
	case Open:
		return "Open"
	case Wall:
		return "Wall"
	case OutOfBounds:
		return "OutOfBounds"
	default:
		return "Unknown"
	}
}

// Board is a square grid of open and wall cells with at most one start cell.
// Cells are stored in row-major order: index = y*size + x.
// Invariant: the start cell, when set, is always Open.
type Board struct {
	size     int
	cells    []CellKind
	start    core.Coord
	hasStart bool
}

// New creates an all-open board of the given side length.
func New(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]CellKind, size*size),
	}
}

// Size returns the side length of the board.
func (b *Board) Size() int {
	return b.size
}

// index converts a coordinate to a flat array index.
func (b *Board) index(c core.Coord) int {
	return c.Y*b.size + c.X
}

// InBounds returns true if the coordinate is within the board.
func (b *Board) InBounds(c core.Coord) bool {
	return c.X >= 0 && c.X < b.size && c.Y >= 0 && c.Y < b.size
}

// Kind returns the cell kind at the given coordinate.
// Out-of-bounds coordinates report OutOfBounds, never panic.
func (b *Board) Kind(c core.Coord) CellKind {
	if !b.InBounds(c) {
		return OutOfBounds
	}
	return b.cells[b.index(c)]
}

// SetCell sets a cell to Open or Wall. Out-of-bounds coordinates and kinds
// other than Open/Wall are silent no-ops. Placing a wall over the current
// start cell clears the start reference.
func (b *Board) SetCell(c core.Coord, kind CellKind) {
	if !b.InBounds(c) || (kind != Open && kind != Wall) {
		return
	}
	b.cells[b.index(c)] = kind
	if kind == Wall && b.hasStart && b.start.Equal(c) {
		b.hasStart = false
	}
}

// SetStart marks the given cell as the start. It succeeds only if the cell
// is Open; walls and out-of-bounds coordinates are rejected. Any previous
// start cell stays Open. Reports whether the start was placed.
func (b *Board) SetStart(c core.Coord) bool {
	if b.Kind(c) != Open {
		return false
	}
	b.start = c
	b.hasStart = true
	return true
}

// Start returns the current start cell and whether one is configured.
func (b *Board) Start() (core.Coord, bool) {
	return b.start, b.hasStart
}

// ClearStart removes the start reference. The cell itself stays Open.
func (b *Board) ClearStart() {
	b.hasStart = false
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]CellKind, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		size:     b.size,
		cells:    cells,
		start:    b.start,
		hasStart: b.hasStart,
	}
}

// OpenCount returns the number of open cells on the board.
func (b *Board) OpenCount() int {
	count := 0
	for _, k := range b.cells {
		if k == Open {
			count++
		}
	}
	return count
}

// Walls returns all wall coordinates in row-major order.
func (b *Board) Walls() []core.Coord {
	var walls []core.Coord
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			c := core.C(x, y)
			if b.cells[b.index(c)] == Wall {
				walls = append(walls, c)
			}
		}
	}
	return walls
}

// Equal returns true if two boards have the same size, cells, and start.
func (b *Board) Equal(other *Board) bool {
	if b.size != other.size || b.hasStart != other.hasStart {
		return false
	}
	if b.hasStart && !b.start.Equal(other.start) {
		return false
	}
	for i, k := range b.cells {
		if k != other.cells[i] {
			return false
		}
	}
	return true
}
