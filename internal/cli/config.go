package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/asciimaze/mazectl/pkg/cache"
	"github.com/asciimaze/mazectl/pkg/errors"
)

// appName is the application name used for config and cache directories.
const appName = "mazectl"

// Config holds user defaults loaded from the optional config file at
// ~/.config/mazectl/config.toml. Flags always override config values.
type Config struct {
	Style  string       `toml:"style"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// CacheConfig selects the generation cache backend.
type CacheConfig struct {
	Backend   string `toml:"backend"` // "file", "redis", or "none"
	Dir       string `toml:"dir"`
	RedisAddr string `toml:"redis_addr"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

func defaultConfig() Config {
	return Config{
		Style: "ruled",
		Cache: CacheConfig{
			Backend:   "file",
			RedisAddr: "localhost:6379",
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// loadConfig reads the config file if present. A missing file yields the
// defaults; a malformed file is an error, not a silent fallback.
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
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	return cfg, nil
}

// configPath returns the config file path using the XDG convention.
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

// cacheDir returns the cache directory using the XDG convention
// (~/.cache/mazectl/ unless overridden by config).
func cacheDir(cfg Config) (string, error) {
	if cfg.Cache.Dir != "" {
		return cfg.Cache.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// newCache builds the cache selected by config. Any failure to set a
// backend up degrades to the null cache; caching is an optimization, never
// a reason to refuse to generate a maze.
func newCache(ctx context.Context, cfg Config, disabled bool) cache.Cache {
	if disabled {
		return cache.NewNullCache()
	}
	switch cfg.Cache.Backend {
	case "redis":
		c, err := cache.NewRedisCache(ctx, cfg.Cache.RedisAddr)
		if err != nil {
			loggerFromContext(ctx).Warn("redis cache unavailable", "addr", cfg.Cache.RedisAddr, "err", err)
			return cache.NewNullCache()
		}
		return c
	case "none":
		return cache.NewNullCache()
	default:
		dir, err := cacheDir(cfg)
		if err != nil {
			return cache.NewNullCache()
		}
		c, err := cache.NewFileCache(dir)
		if err != nil {
			return cache.NewNullCache()
		}
		return c
	}
}
