package pathfind

import (
	"strings"

	"github.com/jasminegamedev/pathfinder-demo/internal/board"
	"github.com/jasminegamedev/pathfinder-demo/internal/core"
)

// RenderField creates an ASCII representation of a solved board.
// Used for CLI output, debugging, and test assertions.
//
// Glyphs:
//   - '#' wall
//   - 'S' start cell
//   - digit: distance mod 10 for reachable cells
//   - '.' open cell outside the field
func RenderField(b *board.Board, field DistanceField) string {
	var sb strings.Builder
	start, hasStart := b.Start()

	size := b.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := core.C(x, y)
			sb.WriteRune(fieldChar(b, field, c, start, hasStart))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func fieldChar(b *board.Board, field DistanceField, c, start core.Coord, hasStart bool) rune {
	if b.Kind(c) == board.Wall {
		return '#'
	}
	if hasStart && c.Equal(start) {
		return 'S'
	}
	if cell, ok := field[c]; ok {
		return rune('0' + cell.Dist%10)
	}
	return '.'
}

// RenderPath creates an ASCII representation of a reconstructed path over
// the board: '*' marks path cells, 'S' the start, '#' walls, '.' the rest.
func RenderPath(b *board.Board, path []core.Coord) string {
	onPath := make(map[core.Coord]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	var sb strings.Builder
	start, hasStart := b.Start()

	size := b.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := core.C(x, y)
			switch {
			case b.Kind(c) == board.Wall:
				sb.WriteRune('#')
			case hasStart && c.Equal(start):
				sb.WriteRune('S')
			case onPath[c]:
				sb.WriteRune('*')
			default:
				sb.WriteRune('.')
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
