package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user defaults for glass geometry and animation, loaded from
// an optional TOML file. Flag values always win over config values.
type Config struct {
	Width         int     `toml:"width"`
	Height        int     `toml:"height"`
	FPS           float64 `toml:"fps"`
	StepsPerFrame int     `toml:"steps_per_frame"`
	Fullness      float64 `toml:"fullness"`
}

// defaultConfig returns the built-in defaults: a 7x12 glass at 75% fullness,
// animated at 20 frames per second with 2 simulation steps per frame.
func defaultConfig() Config {
	return Config{
		Width:         7,
		Height:        12,
		FPS:           20,
		StepsPerFrame: 2,
		Fullness:      0.75,
	}
}

// configPath returns the config file path using the XDG standard
// (~/.config/sandglass/config.toml).
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

// loadConfig reads the config file, applying its values on top of the
// built-in defaults. A missing file is not an error; unknown keys and
// malformed TOML are.
func loadConfig() (Config, error) {
	cfg := defaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
