// Package config loads the optional muskox.toml configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the tunables the engine is built with. Flags override the
// file; the file overrides these defaults.
type Config struct {
	TableMB      int `toml:"tt_size_mb"`
	Workers      int `toml:"workers"`
	DefaultDepth int `toml:"default_depth"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TableMB:      256,
		Workers:      7,
		DefaultDepth: 13,
	}
}

// Load reads a TOML config file, filling unset fields from the defaults.
// A missing file is not an error; it yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.TableMB < 1 {
		return cfg, fmt.Errorf("%s: tt_size_mb must be at least 1", path)
	}
	if cfg.Workers < 1 {
		return cfg, fmt.Errorf("%s: workers must be at least 1", path)
	}
	if cfg.DefaultDepth < 1 || cfg.DefaultDepth > 25 {
		return cfg, fmt.Errorf("%s: default_depth must be between 1 and 25", path)
	}
	return cfg, nil
}
