// Package config provides configuration for the chess-rules host.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Config holds all program configuration.
// Sub-configs are pointers so a YAML file may set only some of their fields.
type Config struct {
	Verbosity int    `yaml:"verbosity"` // 0=nothing, 1=errors and summaries, 2=running commentary
	LogPath   string `yaml:"log_file"`  // empty means stderr

	Play  *PlayConfig  `yaml:"play"`
	Perft *PerftConfig `yaml:"perft"`

	// Output streams
	OutputFile io.Writer `yaml:"-"`
	LogFile    io.Writer `yaml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Play:       NewPlayConfig(),
		Perft:      NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Play != nil {
		if err := c.Play.Validate(); err != nil {
			return err
		}
	}
	if c.Perft != nil {
		if err := c.Perft.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile reads a YAML configuration file over the defaults.
// Keys missing from the file keep their default values; unknown keys are
// rejected.
func LoadFile(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "'%s'", path)
	}
	cfg, err := Parse(b)
	if err != nil {
		return nil, errors.Wrapf(err, "'%s'", path)
	}
	return cfg, nil
}

// Parse decodes YAML configuration over the defaults and validates it.
func Parse(b []byte) (*Config, error) {
	cfg := NewConfig()

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%v: %w", err, errors.ErrInvalidConfig)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
