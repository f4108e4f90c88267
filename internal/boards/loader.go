package boards

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader handles loading board documents from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new board loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all board files under Root.
// Returns documents sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Document, error) {
	var docs []Document

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		doc, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].ID < docs[j].ID
	})
	return docs, nil
}

// LoadFile loads a single board file.
func (l *Loader) LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	doc, err := ParseYAML(data)
	if err != nil {
		return Document{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	doc.FilePath = path
	return doc, nil
}

// List returns the embedded default boards merged with the boards found
// under root (if non-empty). A directory board with the same ID as a
// default replaces it. Sorted by ID.
func List(root string) ([]Document, error) {
	byID := make(map[string]Document)
	for _, doc := range Defaults() {
		byID[doc.ID] = doc
	}

	if root != "" {
		loaded, err := NewLoader(root).LoadAll()
		if err != nil {
			return nil, err
		}
		for _, doc := range loaded {
			byID[doc.ID] = doc
		}
	}

	docs := make([]Document, 0, len(byID))
	for _, doc := range byID {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].ID < docs[j].ID
	})
	return docs, nil
}

// Find returns the board with the given ID from the directory boards or the
// embedded defaults.
func Find(root, id string) (Document, error) {
	docs, err := List(root)
	if err != nil {
		return Document{}, err
	}
	for _, doc := range docs {
		if doc.ID == id {
			return doc, nil
		}
	}
	return Document{}, fmt.Errorf("board not found: %s", id)
}
