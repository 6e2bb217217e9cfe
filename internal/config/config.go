// Package config loads YAML configuration for the go-handout CLI and
// HTTP service. Flags override file values; the file provides defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound   = errors.New("config file not found")
	ErrConfigParse      = errors.New("failed to parse config")
	ErrInvalidDPI       = errors.New("dpi out of range")
	ErrInvalidTiles     = errors.New("invalid tiles value")
	ErrInvalidUploadCap = errors.New("invalid upload limit")
)

// maxConfigSize limits config input to prevent memory exhaustion.
const maxConfigSize = 1 << 20

// DPI bounds mirrored from the library; the config layer rejects rather
// than clamps so a bad file is caught loudly at startup.
const (
	minDPI = 1
	maxDPI = 300
)

// Config holds defaults for handout generation and the HTTP service.
type Config struct {
	Tiles  string       `yaml:"tiles"` // "auto", "1", "2", "4", "6", "9"
	DPI    int          `yaml:"dpi"`
	Server ServerConfig `yaml:"server"`
}

// ServerConfig defines HTTP service options.
type ServerConfig struct {
	Addr        string `yaml:"addr"`        // listen address (default ":8080")
	MaxUploadMB int    `yaml:"maxUploadMB"` // request body cap in MiB (default 50)
}

// Default returns the built-in configuration used when no file is given.
func Default() Config {
	return Config{
		Tiles: "auto",
		DPI:   200,
		Server: ServerConfig{
			Addr:        ":8080",
			MaxUploadMB: 50,
		},
	}
}

// Load reads and validates a YAML config file. Missing fields keep their
// defaults from Default().
func Load(path string) (Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	if info.Size() > maxConfigSize {
		return Config{}, fmt.Errorf("%w: %s exceeds %d bytes", ErrConfigParse, path, maxConfigSize)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path is operator-supplied via --config
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges. Called by Load, and available to
// consumers constructing a Config manually.
func (c *Config) Validate() error {
	switch c.Tiles {
	case "auto", "1", "2", "4", "6", "9":
	default:
		return fmt.Errorf("%w: %q (must be auto, 1, 2, 4, 6, or 9)", ErrInvalidTiles, c.Tiles)
	}
	if c.DPI < minDPI || c.DPI > maxDPI {
		return fmt.Errorf("%w: %d (must be %d-%d)", ErrInvalidDPI, c.DPI, minDPI, maxDPI)
	}
	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("%w: %d MiB", ErrInvalidUploadCap, c.Server.MaxUploadMB)
	}
	return nil
}
