// Package config
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

/*
YAML config example:
input_path: "snapshot.json"
pretty: true
log_level: "debug"
strict_mode: false
*/

// Config holds the CLI wrapper settings. The evaluator's own thresholds are
// fixed; config only covers how snapshots get in and decisions get out.
type Config struct {
	// InputPath is the snapshot JSON file, "-" for stdin.
	InputPath string `yaml:"input_path"`
	// Pretty indents the decision JSON written to stdout.
	Pretty bool `yaml:"pretty"`
	// LogLevel sets the zerolog level for diagnostics on stderr.
	LogLevel string `yaml:"log_level"`
	// StrictMode fills the snapshot's strict_mode default when the
	// snapshot itself omits the flag.
	StrictMode bool `yaml:"strict_mode"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		InputPath: "-",
		LogLevel:  "info",
	}
}

// Load builds the configuration: defaults, then an optional YAML file, then
// environment overrides. A .env file in the working directory is honored
// when present.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	if lvl := os.Getenv("SIGNALEVAL_LOG_LEVEL"); lvl != "" {
		cfg.LogLevel = lvl
	}
	if cfg.InputPath == "" {
		cfg.InputPath = "-"
	}

	return cfg, nil
}
