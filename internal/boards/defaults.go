package boards

import (
	_ "embed"
)

//go:embed defaults/open.yaml
var defaultOpenYAML []byte

//go:embed defaults/corridor.yaml
var defaultCorridorYAML []byte

//go:embed defaults/vault.yaml
var defaultVaultYAML []byte

// Defaults returns the embedded default boards, sorted by ID.
// Documents that fail to parse are skipped; the embedded files are
// validated by tests.
func Defaults() []Document {
	var docs []Document
	for _, data := range [][]byte{defaultCorridorYAML, defaultOpenYAML, defaultVaultYAML} {
		doc, err := ParseYAML(data)
		if err != nil {
			continue
		}
		docs = append(docs, doc)
	}
	return docs
}
