// Package config loads the optional ss7calc defaults file.
//
// The file may be written in YAML (.yaml, .yml) or in JSON with comments
// (.json, .jsonc). JSONC input is cleaned with github.com/tidwall/jsonc and
// then decoded with encoding/json; YAML is decoded with gopkg.in/yaml.v3.
//
// Example ss7calc.yaml:
//
//	# Treat every point code as ITU and emit CSV.
//	network: itu
//	output: csv
//	inputFormat: "383"
//	failFast: false
//	header: true
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/ss7calc/internal/model"
	"github.com/shinji-kodama/ss7calc/internal/pointcode"
)

// EnvVar names the environment variable consulted when no --config flag is
// given.
const EnvVar = "SS7CALC_CONFIG"

// Config holds the user's defaults. Every field is optional; command-line
// flags take precedence over anything set here.
type Config struct {
	// Network is the network type applied to every point code ("itu",
	// "ansi" or empty for unknown).
	Network string `yaml:"network" json:"network"`

	// Output is the display mode ("text" or "csv").
	Output string `yaml:"output" json:"output"`

	// InputFormat is the notation of batch input lines ("int", "545", "383").
	InputFormat string `yaml:"inputFormat" json:"inputFormat"`

	// FailFast stops batch processing at the first invalid line.
	FailFast bool `yaml:"failFast" json:"failFast"`

	// Header controls whether the banner is printed. A nil value means the
	// file did not mention it, which defaults to true.
	Header *bool `yaml:"header" json:"header"`
}

// Default returns the configuration used when no file is loaded.
func Default() *Config {
	return &Config{}
}

// Resolve picks the configuration file path: the explicit flag value wins,
// then the SS7CALC_CONFIG environment variable. An empty result means no
// file should be loaded.
func Resolve(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return os.Getenv(EnvVar)
}

// Load reads and validates a configuration file. The decoder is chosen by
// file extension.
//
// Returns a CLIError with ExitConfigError if the file does not exist, cannot
// be parsed, or contains invalid values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(model.ExitConfigError,
				fmt.Sprintf("config file not found: %s", path), err)
		}
		return nil, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to read config file %s", path), err)
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("invalid config file %s", path), err)
	}
	return cfg, nil
}

// Parse decodes configuration bytes. ext selects the syntax: ".json" and
// ".jsonc" are JSONC, anything else is YAML.
func Parse(data []byte, ext string) (*Config, error) {
	cfg := Default()

	switch strings.ToLower(ext) {
	case ".json", ".jsonc":
		// Strip comments and trailing commas so hand-edited files parse.
		clean := jsonc.ToJSON(data)
		dec := json.NewDecoder(bytes.NewReader(clean))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// A document with no content (or only comments) decodes to io.EOF.
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every enumerated field.
func (c *Config) Validate() error {
	if _, err := pointcode.ParseNetworkType(c.Network); err != nil {
		return err
	}
	if _, err := pointcode.ParseDisplayMode(c.Output); err != nil {
		return err
	}
	if _, err := pointcode.ParseInputFormat(c.InputFormat); err != nil {
		return err
	}
	return nil
}

// NetworkType returns the configured network type. Call Validate first.
func (c *Config) NetworkType() pointcode.NetworkType {
	n, _ := pointcode.ParseNetworkType(c.Network)
	return n
}

// DisplayMode returns the configured display mode. Call Validate first.
func (c *Config) DisplayMode() pointcode.DisplayMode {
	m, _ := pointcode.ParseDisplayMode(c.Output)
	return m
}

// Input returns the configured batch input format. Call Validate first.
func (c *Config) Input() pointcode.InputFormat {
	f, _ := pointcode.ParseInputFormat(c.InputFormat)
	return f
}

// ShowHeader reports whether the banner should be printed.
func (c *Config) ShowHeader() bool {
	return c.Header == nil || *c.Header
}
