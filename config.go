package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".comp.yaml"

// Config carries the front end's presentation settings. Everything has
// a working default; the file is optional.
type Config struct {
	// Precision is the number of decimals used to format computed
	// values; -1 keeps the shortest exact representation.
	Precision int `yaml:"precision"`

	// Color is one of auto, always or never. auto colorizes only when
	// stdout is a terminal.
	Color string `yaml:"color"`
}

func defaultConfig() Config {
	return Config{Precision: -1, Color: "auto"}
}

// loadConfig reads the YAML config at path, or at $HOME/.comp.yaml when
// path is empty. A missing file is not an error, just defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, configFileName)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return cfg, nil
	} else if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %v: %w", path, err)
	}
	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return cfg, fmt.Errorf("invalid config %v: color must be auto, always or never", path)
	}
	return cfg, nil
}

func (cfg Config) colorEnabled() bool {
	switch cfg.Color {
	case "always":
		return true
	case "never":
		return false
	}
	return stdoutIsTerminal()
}
