// Package config loads this repository's ambient configuration: data
// directories, the database DSN, the API bind address, and log level.
// It follows the original project's env-first pattern (config/config.py):
// every setting has a baked-in default, a TOML file can override it, and an
// environment variable takes precedence over both.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the resolved configuration for cmd/knapsackctl's serve
// subcommand. The prepare subcommand does not read it; it takes its input
// and output paths from its own flags.
type Config struct {
	RawDataDir       string `toml:"raw_data_dir"`
	ProcessedDataDir string `toml:"processed_data_dir"`

	APIHost string `toml:"api_host"`
	APIPort int    `toml:"api_port"`

	DatabaseDSN string `toml:"database_dsn"`

	LogLevel string `toml:"log_level"`
}

// Default returns the baked-in configuration, matching config.py's defaults
// (API_HOST=0.0.0.0, API_PORT=8000, LOG_LEVEL=INFO).
func Default() Config {
	return Config{
		RawDataDir:       "data/raw",
		ProcessedDataDir: "data/processed",
		APIHost:          "0.0.0.0",
		APIPort:          8000,
		DatabaseDSN:      "",
		LogLevel:         "info",
	}
}

// Load resolves Config by starting from Default, applying path's TOML
// contents if path is non-empty, then applying environment-variable
// overrides. An empty path is not an error; a non-empty path whose file
// cannot be read or parsed is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RETENTIONLAB_RAW_DATA_DIR"); v != "" {
		cfg.RawDataDir = v
	}
	if v := os.Getenv("RETENTIONLAB_PROCESSED_DATA_DIR"); v != "" {
		cfg.ProcessedDataDir = v
	}
	if v := os.Getenv("RETENTIONLAB_API_HOST"); v != "" {
		cfg.APIHost = v
	}
	if v := os.Getenv("RETENTIONLAB_API_PORT"); v != "" {
		var port int
		if _, err := fmt.Sscanf(v, "%d", &port); err == nil {
			cfg.APIPort = port
		}
	}
	if v := os.Getenv("RETENTIONLAB_DATABASE_DSN"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("RETENTIONLAB_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// Addr returns the "host:port" string ready for http.Server.Addr.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.APIHost, c.APIPort)
}
