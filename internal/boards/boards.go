// Package boards loads board definitions from YAML files.
// This package depends on board but board does not depend on boards.
package boards

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jasminegamedev/pathfinder-demo/internal/board"
	"github.com/jasminegamedev/pathfinder-demo/internal/core"
)

// Glyphs used in board rows.
const (
	glyphOpen  = '.'
	glyphWall  = '#'
	glyphStart = 'S'
)

// Document is a parsed board definition.
type Document struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Size     int               `yaml:"size"`
	Budget   int               `yaml:"budget,omitempty"`
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`

	// FilePath is set by the loader for documents read from disk.
	FilePath string `yaml:"-"`
}

// ParseYAML parses and validates a YAML board document.
// Rows must form a square of the declared size using only the glyphs
// '.' (open), '#' (wall), and 'S' (start, at most one).
func ParseYAML(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if doc.ID == "" {
		return Document{}, fmt.Errorf("board document has no id")
	}
	if doc.Size <= 0 {
		return Document{}, fmt.Errorf("board %s: size %d is not positive", doc.ID, doc.Size)
	}
	if len(doc.Rows) != doc.Size {
		return Document{}, fmt.Errorf("board %s: %d rows, expected %d", doc.ID, len(doc.Rows), doc.Size)
	}

	starts := 0
	for y, row := range doc.Rows {
		if len(row) != doc.Size {
			return Document{}, fmt.Errorf("board %s: row %d has %d cells, expected %d", doc.ID, y, len(row), doc.Size)
		}
		for x, ch := range row {
			switch ch {
			case glyphOpen, glyphWall:
			case glyphStart:
				starts++
			default:
				return Document{}, fmt.Errorf("board %s: unknown glyph %q at (%d,%d)", doc.ID, ch, x, y)
			}
		}
	}
	if starts > 1 {
		return Document{}, fmt.Errorf("board %s: %d start cells, expected at most one", doc.ID, starts)
	}

	return doc, nil
}

// Board materializes the document into an editable board. Walls are placed
// first, then the start, so the open-start invariant holds by construction.
func (d *Document) Board() (*board.Board, error) {
	b := board.New(d.Size)
	var start core.Coord
	hasStart := false

	for y, row := range d.Rows {
		for x, ch := range row {
			switch ch {
			case glyphWall:
				b.SetCell(core.C(x, y), board.Wall)
			case glyphStart:
				start = core.C(x, y)
				hasStart = true
			}
		}
	}
	if hasStart && !b.SetStart(start) {
		return nil, fmt.Errorf("board %s: cannot place start at %v", d.ID, start)
	}
	return b, nil
}
