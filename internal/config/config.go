// Package config loads the Sprout configuration from a TOML file,
// falling back to defaults when the file is absent.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the top-level Sprout configuration.
type Config struct {
	API     APIConfig     `toml:"api"`
	Storage StorageConfig `toml:"storage"`
	Garden  GardenConfig  `toml:"garden"`
}

// APIConfig controls the HTTP server.
type APIConfig struct {
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	Metrics bool   `toml:"metrics"`
}

// StorageConfig controls the SQLite database location.
type StorageConfig struct {
	Path string `toml:"path"`
}

// GardenConfig controls the resource economy rules.
type GardenConfig struct {
	// SeedsPerTransaction is the seed award for each recorded expense.
	SeedsPerTransaction int64 `toml:"seeds_per_transaction"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			Host:    "127.0.0.1",
			Port:    8990,
			Metrics: false,
		},
		Storage: StorageConfig{
			Path: defaultDBPath(),
		},
		Garden: GardenConfig{
			SeedsPerTransaction: 1,
		},
	}
}

// Load reads the config file at path, applying defaults for missing keys.
// A missing file is not an error: defaults are returned.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Addr returns the host:port listen address.
func (c APIConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "sprout.db"
	}
	return filepath.Join(home, ".sprout", "sprout.db")
}
