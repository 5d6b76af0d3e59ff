// Package config handles application configuration management.
package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	// Base directory for all Stickerdex data
	BaseDir string

	// Debug enables verbose database logging
	Debug bool

	// Asset storage settings
	Assets AssetsConfig

	// Search behavior settings
	Search SearchConfig
}

// AssetsConfig holds sticker asset storage settings.
type AssetsConfig struct {
	// Dir overrides the default asset directory (<base>/assets)
	Dir string
}

// SearchConfig holds tag search behavior.
type SearchConfig struct {
	// MatchAll requires every queried tag to be present (default: any)
	MatchAll bool
	// MaxResults caps search output (default: 50)
	MaxResults int
}

// DefaultSearchConfig returns sensible defaults.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		MatchAll:   false,
		MaxResults: 50,
	}
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Read environment variables
	if home := os.Getenv("STICKERDEX_HOME"); home != "" {
		cfg.BaseDir = home
	}

	if dir := os.Getenv("STICKERDEX_ASSETS_DIR"); dir != "" {
		cfg.Assets.Dir = dir
	}

	if raw := os.Getenv("STICKERDEX_DEBUG"); raw != "" {
		cfg.Debug = raw == "true" || raw == "1"
	}

	if raw := os.Getenv("STICKERDEX_SEARCH_LIMIT"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			cfg.Search.MaxResults = limit
		}
	}

	if raw := os.Getenv("STICKERDEX_SEARCH_MATCH_ALL"); raw != "" {
		cfg.Search.MatchAll = raw == "true" || raw == "1"
	}

	// Ensure directories exist
	if err := ensureDirectories(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureDirectories creates required directories if they don't exist.
func ensureDirectories(cfg *Config) error {
	dirs := []string{
		cfg.BaseDir,
		GetPaths(cfg).Assets,
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}

// AssetPath returns the on-disk location of a sticker file inside its folder.
func AssetPath(cfg *Config, folderName, fileName string) string {
	return filepath.Join(GetPaths(cfg).Assets, folderName, fileName)
}
