// Package config provides YAML-based loading of the puzzle catalogue and
// board settings for the syllable puzzle.
package config

import "github.com/vovakirdan/tui-syllables/internal/puzzle"

// SyllablesConfig is the complete game configuration.
type SyllablesConfig struct {
	Board   BoardConfig    `yaml:"board"`
	Display DisplayConfig  `yaml:"display"`
	Puzzles []PuzzleConfig `yaml:"puzzles"`
}

// BoardConfig defines the board size shared by every puzzle.
type BoardConfig struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

// Spec converts the board size to a puzzle.BoardSpec.
func (b BoardConfig) Spec() puzzle.BoardSpec {
	return puzzle.BoardSpec{Rows: b.Rows, Columns: b.Columns}
}

// DisplayConfig defines presentation parameters.
type DisplayConfig struct {
	VictoryTicks int `yaml:"victory_ticks"` // How long the victory banner stays up
	CellWidth    int `yaml:"cell_width"`    // Characters per board cell, borders excluded
}

// PuzzleConfig defines one catalogue entry.
type PuzzleConfig struct {
	Index    int        `yaml:"index"`
	Name     string     `yaml:"name"`
	Target   [][]string `yaml:"target"`
	Scramble [][]int    `yaml:"scramble"` // Row-major list of [row, col] target cells
}
