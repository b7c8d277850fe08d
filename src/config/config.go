package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const DEFAULT_CLEAR_CLIPBOARD_DELAY = 10

type Config struct {
	Capacity            int    `koanf:"capacity"`              // Snapshots kept in history, 0 = unbounded
	Initial             string `koanf:"initial"`               // Text the editor starts with
	ClearClipboardDelay *int   `koanf:"clear_clipboard_delay"` // Seconds, 0 disables (default: 10)
	DebugLog            string `koanf:"debug_log"`             // Log file, empty disables logging
}

// Load reads the config files in order of priority (last wins). extra is an
// additional path given on the command line; unlike the default locations it
// must exist.
func Load(extra string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, "load %s", path)
			}
		}
	}
	if len(extra) > 0 {
		path := expandPath(extra)
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrap(err, "config")
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "load %s", path)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if cfg.Capacity < 0 {
		return nil, errors.Errorf("capacity must not be negative, got %d", cfg.Capacity)
	}
	if cfg.ClearClipboardDelay != nil && *cfg.ClearClipboardDelay < 0 {
		return nil, errors.Errorf("clear_clipboard_delay must not be negative, got %d", *cfg.ClearClipboardDelay)
	}
	cfg.DebugLog = expandPath(cfg.DebugLog)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "easyundo", "config.toml"))
	}
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetClearClipboardDelay returns the delay in seconds with the default applied.
func (c *Config) GetClearClipboardDelay() int {
	if c.ClearClipboardDelay == nil {
		return DEFAULT_CLEAR_CLIPBOARD_DELAY
	}
	return *c.ClearClipboardDelay
}
