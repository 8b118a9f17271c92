package config

import (
	_ "embed"
)

//go:embed defaults/hive.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration used when no file, not even
// the embedded one, can be read.
func Default() Config {
	return Config{
		TickRate: 60,
		Shuffle: ShuffleConfig{
			CollapseMS: 200,
			ExpandMS:   200,
		},
		Puzzles: PuzzlesConfig{
			Dir:     "~/.hive/puzzles",
			Default: "pantry",
		},
		Storage: StorageConfig{
			DBPath: "~/.hive/results.db",
		},
		SSH: SSHConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
		Ranks: []Rank{
			{Name: "Beginner", MinProgress: 0.0},
			{Name: "Good", MinProgress: 0.08},
			{Name: "Great", MinProgress: 0.40},
			{Name: "Genius", MinProgress: 0.70},
			{Name: "Queen Bee", MinProgress: 1.0},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
