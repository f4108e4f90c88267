package pathfind

import (
	"testing"

	"github.com/jasminegamedev/pathfinder-demo/internal/core"
)

func TestRenderField(t *testing.T) {
	b := parseBoard(t,
		"S.#",
		"..#",
		"...",
	)
	field := Generate(b, 2)

	expected := "S1#\n" +
		"12#\n" +
		"2..\n"
	if got := RenderField(b, field); got != expected {
		t.Errorf("RenderField() =\n%s\nexpected:\n%s", got, expected)
	}
}

func TestRenderFieldNoStart(t *testing.T) {
	b := parseBoard(t,
		"..",
		".#",
	)
	expected := "..\n" +
		".#\n"
	if got := RenderField(b, nil); got != expected {
		t.Errorf("RenderField() =\n%s\nexpected:\n%s", got, expected)
	}
}

func TestRenderPath(t *testing.T) {
	b := parseBoard(t,
		"S.#",
		".##",
		"...",
	)
	field := Generate(b, 6)
	path, _, err := ReconstructPath(field, core.C(2, 2))
	if err != nil {
		t.Fatalf("ReconstructPath failed: %v", err)
	}

	expected := "S.#\n" +
		"*##\n" +
		"***\n"
	if got := RenderPath(b, path); got != expected {
		t.Errorf("RenderPath() =\n%s\nexpected:\n%s", got, expected)
	}
}
