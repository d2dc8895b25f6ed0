// Package config loads the optional texel.toml settings file.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user settings. Command-line flags override every field.
type Config struct {
	Theme   string `toml:"theme"`
	NoColor bool   `toml:"no_color"`
	Pager   bool   `toml:"pager"`
	Cache   string `toml:"cache"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{Theme: "default", Pager: true}
}

// DefaultPath returns the conventional config location, or "" when the
// user config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "texel", "texel.toml")
}

// Load reads and parses a TOML config file. A missing file is not an
// error; defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
