package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search directories.
const FileName = "hive.yaml"

// Load loads the hive configuration.
// Search order: customPath -> ~/.hive/configs/hive.yaml -> ./configs/hive.yaml -> embedded default
// Values missing from a file keep their defaults. Only an explicit
// customPath that cannot be read or parsed is an error.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Default(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data over the defaults and validates the result.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	cfg.Validate()
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hive", "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(p string) (string, error) {
	if p == "" || p[0] != '~' {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(p[1:], "/")), nil
}
