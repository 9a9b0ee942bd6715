// Package config handles application configuration.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/asteroid-belt/hashcollide/internal/enumerate"
	"github.com/asteroid-belt/hashcollide/internal/hash"
)

// AppName is used for the state directory and log file names.
const AppName = "hashcollide"

// LogDirEnv overrides the log directory.
const LogDirEnv = "HASHCOLLIDE_LOG_DIR"

// Config holds all application configuration.
type Config struct {
	// Default number of hex characters compared when none is given.
	HashLength int

	// Tuple width of the enumeration. Fixed; exposed for display only.
	Width int

	// Directory holding hashcollide.log
	LogDir string

	// How often --progress prints a status line
	ProgressInterval time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		HashLength:       hash.DefaultLength,
		Width:            enumerate.Width,
		LogDir:           DefaultLogDir(),
		ProgressInterval: 2 * time.Second,
	}
}

// Load returns the defaults with environment overrides applied.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if dir := os.Getenv(LogDirEnv); dir != "" {
		cfg.LogDir = dir
	}

	return cfg, nil
}

// LogFile returns the path of the log file.
func (c *Config) LogFile() string {
	return filepath.Join(c.LogDir, AppName+".log")
}

// DefaultLogDir returns $XDG_STATE_HOME/hashcollide.
func DefaultLogDir() string {
	return filepath.Join(xdg.StateHome, AppName)
}
