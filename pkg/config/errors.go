package config

import "errors"

// Sentinel errors for configuration loading.
var (
	// ErrRead is returned when an existing config file cannot be read.
	ErrRead = errors.New("config: failed to read file")

	// ErrInvalidConfig is returned for malformed YAML, unknown keys or invalid values.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrNoConfigDir is returned when no configuration directory can be determined.
	ErrNoConfigDir = errors.New("config: cannot determine configuration directory")
)
