package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Paths contains commonly used file paths.
type Paths struct {
	Database  string // Main SQLite database
	Favorites string // Favorites JSON store
	Assets    string // Downloaded sticker files, one subdirectory per folder
	Exports   string // Catalog export output directory
	Log       string // Application log file
}

// GetPaths returns all commonly used paths based on config.
func GetPaths(cfg *Config) Paths {
	assets := cfg.Assets.Dir
	if assets == "" {
		assets = filepath.Join(cfg.BaseDir, "assets")
	}

	return Paths{
		Database:  filepath.Join(cfg.BaseDir, "stickerdex.db"),
		Favorites: filepath.Join(cfg.BaseDir, "favorites.json"),
		Assets:    assets,
		Exports:   filepath.Join(cfg.BaseDir, "exports"),
		Log:       filepath.Join(cfg.BaseDir, "stickerdex.log"),
	}
}

// DefaultBaseDir returns the default base directory, following the XDG
// data-home convention ($XDG_DATA_HOME/stickerdex).
func DefaultBaseDir() string {
	return filepath.Join(xdg.DataHome, "stickerdex")
}
