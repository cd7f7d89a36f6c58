package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	appDirName = "vanityhunter"
	configFile = "config.toml"
)

// File holds defaults read from the config file. Zero values mean "not set";
// command line flags always take precedence.
type File struct {
	Network       string   `toml:"network"`
	AddressType   string   `toml:"address_type"`
	Workers       int      `toml:"workers"`
	Batch         int      `toml:"batch"`
	Limit         int      `toml:"limit"`
	CaseSensitive bool     `toml:"case_sensitive"`
	MaxSpeed      bool     `toml:"max_speed"`
	OutputDir     string   `toml:"output_dir"`
	Timeout       Duration `toml:"timeout"`
	ShutdownGrace Duration `toml:"shutdown_grace"`
	ExactAttempts bool     `toml:"exact_attempts"`
	LogLevel      string   `toml:"log_level"`
}

// Duration is a time.Duration written as a string such as "90s" or "1h30m".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string such as "5s".
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("negative duration %q", text)
	}
	d.Duration = v
	return nil
}

// MarshalText writes the duration in time.Duration.String form.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Load reads the config at path. An empty path means the per-user default
// location, which may be absent; an explicitly named file must exist.
func Load(path string) (*File, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return &File{}, nil
		}
		path = p
	}

	var cfg File
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return &cfg, nil
}

// DefaultPath returns the per-user config location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName, configFile), nil
}
