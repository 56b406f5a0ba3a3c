// Package config loads the optional gostringer configuration file, which
// supplies default data-file paths so commands can be run without
// repeating flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/fubueng/gostringer/internal/logging"
)

// DefaultFileName is looked up in the working directory when no explicit
// config path is given.
const DefaultFileName = "gostringer.yaml"

// Config holds all gostringer configuration.
type Config struct {
	// Data file locations
	Data DataConfig `yaml:"data"`

	// Logging
	Logging logging.Config `yaml:"logging"`
}

// DataConfig holds the default locations of the persisted stores.
type DataConfig struct {
	RowsCSV    string `yaml:"rows_csv"`   // source stringer table
	RowsJSON   string `yaml:"rows_json"`  // derived table store
	Lookup     string `yaml:"lookup"`     // cross-section lookup
	Properties string `yaml:"properties"` // global properties store
	Panels     string `yaml:"panels"`     // panel list store
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Data: DataConfig{
			RowsCSV:    "stringers.csv",
			RowsJSON:   "stringers.json",
			Lookup:     "cross_sections.json",
			Properties: "properties.json",
			Panels:     "panels.json",
		},
		Logging: logging.Config{
			Level:      "warn",
			Format:     "console",
			OutputPath: "stderr",
		},
	}
}

// Load reads a config file, overlaying it on the defaults. An empty path
// falls back to DefaultFileName in the working directory; if neither
// exists the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultFileName
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}
