// Package config loads the avctl configuration file. The service pipe
// endpoint is deliberately not configurable here; only the CLI's own
// behavior is.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/David2287/Client-App/internal/paths"
)

// Config is the avctl configuration.
type Config struct {
	// Username used when a command needs one and none is given.
	Username string `toml:"username"`

	// Log level: debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// Log format: console or json.
	LogFormat string `toml:"log_format"`

	// CallTimeout bounds each service call, e.g. "10s". The pipe has
	// no timeout of its own; a dead service would otherwise block a
	// call forever.
	CallTimeout string `toml:"call_timeout"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		LogLevel:    "info",
		LogFormat:   "console",
		CallTimeout: "10s",
	}
}

// Load reads the config file from the default location. A missing
// file yields the defaults, not an error.
func Load() (*Config, error) {
	return LoadFrom(paths.ConfigFile())
}

// LoadFrom reads and parses a config file at the given path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if _, err := time.ParseDuration(cfg.CallTimeout); err != nil {
		return nil, fmt.Errorf("parsing config %s: bad call_timeout: %w", path, err)
	}
	return cfg, nil
}

// Timeout returns the parsed call timeout. Load already validated it.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.CallTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}
