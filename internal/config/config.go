// Package config provides YAML-based configuration loading for hive.
package config

import (
	"time"

	"github.com/vovakirdan/hive/internal/letterpad"
)

// Config contains all settings for the game and its surfaces.
type Config struct {
	TickRate int           `yaml:"tick_rate"` // UI ticks per second
	Shuffle  ShuffleConfig `yaml:"shuffle"`
	Puzzles  PuzzlesConfig `yaml:"puzzles"`
	Storage  StorageConfig `yaml:"storage"`
	SSH      SSHConfig     `yaml:"ssh"`
	Ranks    []Rank        `yaml:"ranks"`
}

// ShuffleConfig defines the two shuffle animation delays.
type ShuffleConfig struct {
	CollapseMS int `yaml:"collapse_ms"`
	ExpandMS   int `yaml:"expand_ms"`
}

// Timing converts the delays for the letter pad.
func (s ShuffleConfig) Timing() letterpad.Timing {
	return letterpad.Timing{
		Collapse: time.Duration(s.CollapseMS) * time.Millisecond,
		Expand:   time.Duration(s.ExpandMS) * time.Millisecond,
	}
}

// PuzzlesConfig says where puzzle files live and which one to open.
type PuzzlesConfig struct {
	Dir     string `yaml:"dir"`
	Default string `yaml:"default"`
}

// StorageConfig defines the result history database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// SSHConfig defines the remote play server.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"` // Empty means ~/.hive/host_key
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout converts the configured minutes.
func (s SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// Validate replaces out-of-range values with defaults.
func (c *Config) Validate() {
	def := Default()

	if c.TickRate <= 0 || c.TickRate > 240 {
		c.TickRate = def.TickRate
	}
	if c.Shuffle.CollapseMS < 0 {
		c.Shuffle.CollapseMS = def.Shuffle.CollapseMS
	}
	if c.Shuffle.ExpandMS < 0 {
		c.Shuffle.ExpandMS = def.Shuffle.ExpandMS
	}
	if c.Storage.DBPath == "" {
		c.Storage.DBPath = def.Storage.DBPath
	}
	if c.SSH.Address == "" {
		c.SSH.Address = def.SSH.Address
	}
	if c.SSH.IdleTimeoutMinutes <= 0 {
		c.SSH.IdleTimeoutMinutes = def.SSH.IdleTimeoutMinutes
	}
	if len(c.Ranks) == 0 {
		c.Ranks = def.Ranks
	}
	c.Ranks = sortRanks(c.Ranks)
}
