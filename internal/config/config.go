// Package config provides YAML-based configuration loading for the
// pathfinder CLI, including the clamped board-size and budget policy the
// engine itself does not enforce.
package config

import (
	"github.com/jasminegamedev/pathfinder-demo/internal/core"
)

// Bounds for user-supplied numeric settings. Values outside these ranges
// are clamped before they reach the engine; the engine assumes validated
// input and never re-checks them.
const (
	MinBoardSize = 2
	MaxBoardSize = 50
	MinBudget    = 1
	MaxBudget    = 500
)

// Config contains all configuration for the pathfinder CLI.
type Config struct {
	Board    BoardConfig    `yaml:"board"`
	Database DatabaseConfig `yaml:"database"`
}

// BoardConfig defines board parameters used when a board file does not
// supply its own.
type BoardConfig struct {
	Size   int `yaml:"size"`   // Side length for generated boards
	Budget int `yaml:"budget"` // Default movement budget
}

// DatabaseConfig defines where solve history is stored.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// Normalize clamps numeric settings into their valid ranges.
func (c *Config) Normalize() {
	c.Board.Size = core.Clamp(c.Board.Size, MinBoardSize, MaxBoardSize)
	c.Board.Budget = core.Clamp(c.Board.Budget, MinBudget, MaxBudget)
}
