package config

import (
	_ "embed"
)

//go:embed defaults/syllables.yaml
var defaultSyllablesYAML []byte

// Fallback values for missing display settings.
const (
	defaultVictoryTicks = 180
	defaultCellWidth    = 7
)

// DefaultSyllablesConfig returns the built-in catalogue without touching YAML.
func DefaultSyllablesConfig() SyllablesConfig {
	return SyllablesConfig{
		Board: BoardConfig{Rows: 4, Columns: 4},
		Display: DisplayConfig{
			VictoryTicks: defaultVictoryTicks,
			CellWidth:    defaultCellWidth,
		},
		Puzzles: []PuzzleConfig{
			{
				Index: 1,
				Name:  "Invisible",
				Target: [][]string{
					{"in", "vis", "i", "ble"},
					{"im", "mac", "u", "late"},
					{"af", "fil", "i", "ate"},
					{"un", "der", "wa", "ter"},
				},
				Scramble: [][]int{
					{3, 3}, {2, 3}, {0, 3}, {3, 1},
					{2, 1}, {0, 0}, {1, 0}, {0, 2},
					{2, 2}, {1, 3}, {1, 1}, {3, 0},
					{1, 2}, {0, 1}, {2, 0}, {3, 2},
				},
			},
			{
				Index: 2,
				Name:  "Examining",
				Target: [][]string{
					{"ex", "am", "in", "ing"},
					{"re", "in", "force", "ment"},
					{"in", "for", "ma", "tive"},
					{"ma", "te", "ri", "al"},
				},
				Scramble: [][]int{
					{1, 2}, {1, 3}, {3, 3}, {0, 2},
					{2, 1}, {2, 2}, {0, 1}, {1, 1},
					{2, 3}, {3, 0}, {0, 3}, {2, 0},
					{3, 2}, {1, 0}, {3, 1}, {0, 0},
				},
			},
			{
				Index: 3,
				Name:  "Mechanical",
				Target: [][]string{
					{"me", "chan", "i", "cal"},
					{"cal", "cu", "lat", "ing"},
					{"im", "me", "di", "ate"},
					{"di", "ag", "on", "al"},
				},
				Scramble: [][]int{
					{3, 3}, {2, 2}, {0, 0}, {3, 0},
					{1, 1}, {0, 3}, {1, 0}, {2, 1},
					{1, 2}, {2, 0}, {1, 3}, {0, 2},
					{3, 2}, {2, 3}, {3, 1}, {0, 1},
				},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSyllablesYAML
}

// applyDisplayDefaults fills display settings a user file left out.
func applyDisplayDefaults(cfg *SyllablesConfig) {
	if cfg.Display.VictoryTicks <= 0 {
		cfg.Display.VictoryTicks = defaultVictoryTicks
	}
	if cfg.Display.CellWidth <= 0 {
		cfg.Display.CellWidth = defaultCellWidth
	}
}
