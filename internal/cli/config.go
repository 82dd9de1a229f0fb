package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// Config
// =============================================================================

// Config holds user preferences read from the config file. Values act as
// defaults for the corresponding flags, so flags always win.
type Config struct {
	// IntervalMS is the playback delay between events in milliseconds.
	IntervalMS int `toml:"interval_ms"`

	// Columns and Rows size the board canvas in cells.
	Columns int `toml:"columns"`
	Rows    int `toml:"rows"`

	// Plain strips colors and decoration from trace output.
	Plain bool `toml:"plain"`
}

// defaultConfig returns the built-in defaults used when no config file exists.
func defaultConfig() Config {
	return Config{
		IntervalMS: 400,
		Columns:    64,
		Rows:       20,
	}
}

// configPath returns the config file path using the XDG standard
// (~/.config/graphwalk/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the config file, keeping defaults for any key the file
// does not set. A missing file is not an error; an unreadable or malformed
// one is.
func loadConfig() (Config, error) {
	cfg := defaultConfig()
	path, err := configPath()
	if err != nil {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
