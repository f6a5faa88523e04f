package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the Canvas CLI.
//
// Fields:
//   - DatabasePath: location of the sqlite file holding accounts, metadata
//     and encrypted credentials.
//   - KeyfilePath: location of the vault keyfile protecting stored
//     credentials.
//   - RequestTimeout: per-request timeout for remote calls.
type Config struct {
	DatabasePath   string
	KeyfilePath    string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults. Files live under the
// user's config directory, falling back to the working directory when it
// cannot be resolved.
func (c *Config) LoadDefaults() {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	dir = filepath.Join(dir, "canvas-cli")

	c.DatabasePath = filepath.Join(dir, "app.db")
	c.KeyfilePath = filepath.Join(dir, "vault.key")
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
