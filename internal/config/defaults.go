package config

import (
	_ "embed"
)

//go:embed defaults/pathfinder.yaml
var defaultConfigYAML []byte

// DefaultConfig returns the default pathfinder configuration.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Size:   9,
			Budget: 6,
		},
		Database: DatabaseConfig{
			Path: "~/.pathfinder/runs.db",
		},
	}
}
