package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultParses(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.TickRate)
	assert.Equal(t, 200*time.Millisecond, cfg.Shuffle.Timing().Collapse)
	assert.Equal(t, 200*time.Millisecond, cfg.Shuffle.Timing().Expand)
	assert.Equal(t, "pantry", cfg.Puzzles.Default)
	assert.Equal(t, ":23234", cfg.SSH.Address)
	assert.Equal(t, 30*time.Minute, cfg.SSH.IdleTimeout())
	require.Len(t, cfg.Ranks, 10)
	assert.Equal(t, "Beginner", cfg.Ranks[0].Name)
	assert.Equal(t, "Queen Bee", cfg.Ranks[9].Name)
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("tick_rate: 30\nshuffle:\n  collapse_ms: 50\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.TickRate)
	assert.Equal(t, 50, cfg.Shuffle.CollapseMS)
	// Missing keys keep their defaults.
	assert.Equal(t, 200, cfg.Shuffle.ExpandMS)
	assert.Equal(t, Default().Storage.DBPath, cfg.Storage.DBPath)
	assert.NotEmpty(t, cfg.Ranks)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick_rate: [oops"), 0o644))
	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default().TickRate, cfg.TickRate)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(*Config)
		check func(*testing.T, Config)
	}{
		{
			name: "zero tick rate",
			mod:  func(c *Config) { c.TickRate = 0 },
			check: func(t *testing.T, c Config) {
				assert.Equal(t, 60, c.TickRate)
			},
		},
		{
			name: "huge tick rate",
			mod:  func(c *Config) { c.TickRate = 1000 },
			check: func(t *testing.T, c Config) {
				assert.Equal(t, 60, c.TickRate)
			},
		},
		{
			name: "negative delays",
			mod: func(c *Config) {
				c.Shuffle.CollapseMS = -1
				c.Shuffle.ExpandMS = -5
			},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, 200, c.Shuffle.CollapseMS)
				assert.Equal(t, 200, c.Shuffle.ExpandMS)
			},
		},
		{
			name: "zero delays are kept",
			mod: func(c *Config) {
				c.Shuffle.CollapseMS = 0
				c.Shuffle.ExpandMS = 0
			},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, 0, c.Shuffle.CollapseMS)
				assert.Equal(t, 0, c.Shuffle.ExpandMS)
			},
		},
		{
			name: "empty paths",
			mod: func(c *Config) {
				c.Storage.DBPath = ""
				c.SSH.Address = ""
				c.SSH.IdleTimeoutMinutes = 0
			},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, "~/.hive/results.db", c.Storage.DBPath)
				assert.Equal(t, ":23234", c.SSH.Address)
				assert.Equal(t, 30, c.SSH.IdleTimeoutMinutes)
			},
		},
		{
			name: "unsorted ranks",
			mod: func(c *Config) {
				c.Ranks = []Rank{{"Top", 1.5}, {"Low", -1}, {"Mid", 0.5}}
			},
			check: func(t *testing.T, c Config) {
				require.Len(t, c.Ranks, 3)
				assert.Equal(t, Rank{"Low", 0}, c.Ranks[0])
				assert.Equal(t, Rank{"Mid", 0.5}, c.Ranks[1])
				assert.Equal(t, Rank{"Top", 1}, c.Ranks[2])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mod(&cfg)
			cfg.Validate()
			tt.check(t, cfg)
		})
	}
}

func TestRankFor(t *testing.T) {
	ranks := Default().Ranks

	tests := []struct {
		progress float64
		want     string
	}{
		{-0.5, "Beginner"},
		{0, "Beginner"},
		{0.079, "Beginner"},
		{0.08, "Good"},
		{0.5, "Great"},
		{0.7, "Genius"},
		{0.99, "Genius"},
		{1, "Queen Bee"},
		{2, "Queen Bee"},
		{math.NaN(), "Beginner"},
	}

	for _, tt := range tests {
		got := RankFor(ranks, tt.progress)
		if got.Name != tt.want {
			t.Errorf("RankFor(%v) = %q, want %q", tt.progress, got.Name, tt.want)
		}
	}

	assert.Equal(t, Rank{}, RankFor(nil, 0.5))
}

func TestNextRank(t *testing.T) {
	ranks := Default().Ranks

	next, ok := NextRank(ranks, 0.1)
	require.True(t, ok)
	assert.Equal(t, "Great", next.Name)

	_, ok = NextRank(ranks, 1)
	assert.False(t, ok)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/.hive/results.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".hive", "results.db"), got)

	got, err = ExpandHome("/tmp/x.db")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", got)

	got, err = ExpandHome(":memory:")
	require.NoError(t, err)
	assert.Equal(t, ":memory:", got)
}
