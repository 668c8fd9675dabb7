// Package config loads settings for the polynomial command from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/polynomial"
	"github.com/zephyrtronium/polynomial/internal/logging"
)

// Config holds settings shared by the subcommands.
type Config struct {
	// Variable is the single-rune variable marker.
	Variable string `yaml:"variable"`
	// Precision is the number of bits used to evaluate polynomials. Zero means
	// float64 arithmetic.
	Precision uint `yaml:"precision"`
	// MaxPrecision bounds the precision a single evaluation may use.
	MaxPrecision uint `yaml:"max_precision"`
	// Addr is the listen address for serve.
	Addr string `yaml:"addr"`
	// LogLevel is one of debug, info, warn, or error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the settings used when no configuration file is given.
func Default() Config {
	return Config{
		Variable:     "x",
		MaxPrecision: 4096,
		Addr:         ":8080",
		LogLevel:     "info",
	}
}

// Load reads a YAML configuration file. Settings missing from the file keep
// their defaults. An empty name returns the defaults.
func Load(name string) (Config, error) {
	if name == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Decode(bytes.NewReader(b))
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", name, err)
	}
	return cfg, nil
}

// Decode parses YAML settings from r over the defaults. Unknown keys are an
// error.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if utf8.RuneCountInString(c.Variable) != 1 {
		return fmt.Errorf("variable must be a single character, not %q", c.Variable)
	}
	if _, err := c.VarOption(); err != nil {
		return err
	}
	if c.MaxPrecision == 0 {
		return errors.New("max_precision must be positive")
	}
	if c.Precision > c.MaxPrecision {
		return fmt.Errorf("precision %d exceeds max_precision %d", c.Precision, c.MaxPrecision)
	}
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// VarOption returns the polynomial option selecting the configured variable.
func (c Config) VarOption() (opt polynomial.Option, err error) {
	r, _ := utf8.DecodeRuneInString(c.Variable)
	defer func() {
		if v := recover(); v != nil {
			opt, err = nil, fmt.Errorf("%v", v)
		}
	}()
	return polynomial.Variable(r), nil
}
