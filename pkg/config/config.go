package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/tldr/pkg/color"
	"github.com/dmitrymomot/tldr/pkg/locale"
)

const (
	// EnvConfigDir overrides the directory holding the config file.
	EnvConfigDir = "TLDR_CONFIG_DIR"

	// FileName is the name of the config file inside the config directory.
	FileName = "config.yaml"

	// DefaultMaxAgeHours is how long cached pages stay fresh: 30 days.
	DefaultMaxAgeHours = 720
)

// Config is the client configuration.
type Config struct {
	Cache   CacheConfig   `yaml:"cache"`
	Display DisplayConfig `yaml:"display"`

	// Source is the file the configuration was read from.
	// Empty when defaults are in use.
	Source string `yaml:"-"`
}

// CacheConfig controls the page cache.
type CacheConfig struct {
	// Languages lists the languages to search in priority order.
	// Empty means derive them from LANG and LANGUAGE.
	Languages []string `yaml:"languages"`

	// AutoUpdate refreshes the cache once it is older than MaxAgeHours.
	AutoUpdate bool `yaml:"auto_update"`

	MaxAgeHours uint64 `yaml:"max_age_hours"`
}

// MaxAge returns MaxAgeHours as a duration.
func (c CacheConfig) MaxAge() time.Duration {
	return time.Duration(c.MaxAgeHours) * time.Hour
}

// DisplayConfig controls terminal output.
type DisplayConfig struct {
	// Color is one of "auto", "always" or "never".
	Color string `yaml:"color"`

	// Quiet suppresses warning and info messages.
	Quiet bool `yaml:"quiet"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Cache: CacheConfig{
			MaxAgeHours: DefaultMaxAgeHours,
		},
		Display: DisplayConfig{
			Color: color.Auto.String(),
		},
	}
}

// DefaultPath returns the config file location. TLDR_CONFIG_DIR wins over the
// user configuration directory. lookup defaults to os.LookupEnv when nil.
func DefaultPath(lookup locale.LookupFunc) (string, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if dir, ok := lookup(EnvConfigDir); ok && dir != "" {
		return filepath.Join(dir, FileName), nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoConfigDir, err)
	}
	return filepath.Join(dir, "tldr", FileName), nil
}

// Load reads the configuration at path. A missing file yields Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrRead, path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// Parse decodes YAML data on top of Default(). Empty data yields the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if _, err := cfg.ColorChoice(); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	return cfg, nil
}

// ColorChoice returns the parsed display color setting.
func (c *Config) ColorChoice() (color.Choice, error) {
	return color.ParseChoice(c.Display.Color)
}

// Languages resolves the languages to search. See locale.Resolve: a
// non-empty Cache.Languages gets "en" appended in place.
func (c *Config) Languages(lookup locale.LookupFunc) []string {
	return locale.Resolve(&c.Cache.Languages, lookup)
}
