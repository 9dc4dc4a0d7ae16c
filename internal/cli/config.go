package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// Config
// =============================================================================

// Config holds persistent CLI settings loaded from the config file.
// Every field has a sensible default so a missing file is not an error.
type Config struct {
	Lang      string      `toml:"lang"`
	Depth     int         `toml:"depth"`
	Downsize  float64     `toml:"downsize"`
	Style     string      `toml:"style"`
	OutputDir string      `toml:"output_dir"`
	Cache     CacheConfig `toml:"cache"`
}

// CacheConfig selects and tunes the cache backend.
type CacheConfig struct {
	Backend   string `toml:"backend"`
	RedisAddr string `toml:"redis_addr"`
	TTLHours  int    `toml:"ttl_hours"`
}

// defaultConfig returns the built-in defaults.
func defaultConfig() Config {
	return Config{
		Lang:     "en",
		Depth:    2,
		Downsize: 4,
		Cache: CacheConfig{
			Backend:   "file",
			RedisAddr: "localhost:6379",
			TTLHours:  24,
		},
	}
}

// loadConfig reads the config file at path, falling back to defaults for
// unset fields. A missing file yields pure defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	if cfg.Depth < 0 {
		return cfg, fmt.Errorf("config %s: depth must be >= 0", path)
	}
	if cfg.Downsize <= 0 {
		return cfg, fmt.Errorf("config %s: downsize must be > 0", path)
	}
	switch cfg.Cache.Backend {
	case "file", "redis", "none":
	default:
		return cfg, fmt.Errorf("config %s: unknown cache backend %q", path, cfg.Cache.Backend)
	}

	return cfg, nil
}

// =============================================================================
// Paths
// =============================================================================

// configPath returns the config file location using XDG standard
// (~/.config/wikigraph/config.toml).
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

// cacheDir returns the cache directory using XDG standard (~/.cache/wikigraph/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
