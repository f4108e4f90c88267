package boards

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jasminegamedev/pathfinder-demo/internal/board"
	"github.com/jasminegamedev/pathfinder-demo/internal/core"
)

const validYAML = `
id: test
name: Test board
size: 3
budget: 4
rows:
  - "S.#"
  - "..#"
  - "..."
`

func TestParseYAML(t *testing.T) {
	doc, err := ParseYAML([]byte(validYAML))
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}

	if doc.ID != "test" || doc.Name != "Test board" {
		t.Errorf("parsed id/name = %q/%q", doc.ID, doc.Name)
	}
	if doc.Size != 3 || doc.Budget != 4 {
		t.Errorf("parsed size/budget = %d/%d, expected 3/4", doc.Size, doc.Budget)
	}

	b, err := doc.Board()
	if err != nil {
		t.Fatalf("Board() failed: %v", err)
	}
	start, ok := b.Start()
	if !ok || !start.Equal(core.C(0, 0)) {
		t.Errorf("start = %v, %v, expected (0,0), true", start, ok)
	}
	if b.Kind(core.C(2, 0)) != board.Wall || b.Kind(core.C(2, 1)) != board.Wall {
		t.Error("wall column not placed")
	}
	if b.Kind(core.C(1, 1)) != board.Open {
		t.Error("open cell not open")
	}
}

func TestParseYAMLRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing id", "size: 2\nrows: [\"..\", \"..\"]"},
		{"zero size", "id: x\nsize: 0\nrows: []"},
		{"row count mismatch", "id: x\nsize: 3\nrows: [\"...\", \"...\"]"},
		{"row length mismatch", "id: x\nsize: 3\nrows: [\"...\", \"..\", \"...\"]"},
		{"unknown glyph", "id: x\nsize: 2\nrows: [\".?\", \"..\"]"},
		{"two starts", "id: x\nsize: 2\nrows: [\"SS\", \"..\"]"},
		{"not yaml", "{{{"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseYAML([]byte(tc.yaml)); err == nil {
				t.Error("ParseYAML() should have failed")
			}
		})
	}
}

func TestParseYAMLNoStartIsValid(t *testing.T) {
	doc, err := ParseYAML([]byte("id: empty\nsize: 2\nrows: [\"..\", \"..\"]"))
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}
	b, err := doc.Board()
	if err != nil {
		t.Fatalf("Board() failed: %v", err)
	}
	if _, ok := b.Start(); ok {
		t.Error("board without an S glyph should have no start")
	}
}

func TestLoaderLoadAll(t *testing.T) {
	tmpDir := t.TempDir()

	writeBoard := func(name, id string) {
		data := strings.Replace(validYAML, "id: test", "id: "+id, 1)
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte(data), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	writeBoard("b.yaml", "beta")
	writeBoard("a.yml", "alpha")
	// Invalid and unrelated files are skipped
	os.WriteFile(filepath.Join(tmpDir, "broken.yaml"), []byte("{{{"), 0o644)
	os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("ignore me"), 0o644)

	docs, err := NewLoader(tmpDir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}

	if len(docs) != 2 {
		t.Fatalf("loaded %d boards, expected 2", len(docs))
	}
	// Sorted by ID
	if docs[0].ID != "alpha" || docs[1].ID != "beta" {
		t.Errorf("order = %s, %s, expected alpha, beta", docs[0].ID, docs[1].ID)
	}
	if docs[0].FilePath == "" {
		t.Error("loader should record the file path")
	}
}

func TestDefaults(t *testing.T) {
	docs := Defaults()
	if len(docs) != 3 {
		t.Fatalf("got %d default boards, expected 3", len(docs))
	}

	for _, doc := range docs {
		b, err := doc.Board()
		if err != nil {
			t.Errorf("default %s: Board() failed: %v", doc.ID, err)
			continue
		}
		if _, ok := b.Start(); !ok {
			t.Errorf("default %s has no start cell", doc.ID)
		}
		if doc.Budget <= 0 {
			t.Errorf("default %s has no budget", doc.ID)
		}
	}
}

func TestListMergesDefaultsAndDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	// A directory board overriding the "open" default plus a new one.
	override := `
id: open
name: Overridden
size: 2
rows:
  - "S."
  - ".."
`
	os.WriteFile(filepath.Join(tmpDir, "open.yaml"), []byte(override), 0o644)
	extra := strings.Replace(validYAML, "id: test", "id: extra", 1)
	os.WriteFile(filepath.Join(tmpDir, "extra.yaml"), []byte(extra), 0o644)

	docs, err := List(tmpDir)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(docs) != 4 {
		t.Fatalf("listed %d boards, expected 4 (3 defaults, 1 override, 1 extra)", len(docs))
	}

	found, err := Find(tmpDir, "open")
	if err != nil {
		t.Fatalf("Find(open) failed: %v", err)
	}
	if found.Name != "Overridden" {
		t.Errorf("Find(open).Name = %q, expected the directory override", found.Name)
	}

	if _, err := Find(tmpDir, "no-such-board"); err == nil {
		t.Error("Find of an unknown ID should fail")
	}
}

func TestFindWithoutDirectory(t *testing.T) {
	doc, err := Find("", "corridor")
	if err != nil {
		t.Fatalf("Find(corridor) failed: %v", err)
	}
	if doc.Size != 5 {
		t.Errorf("corridor size = %d, expected 5", doc.Size)
	}
}
