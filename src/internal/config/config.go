// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/H0llyW00dzZ/txn-triple-extractor/src/internal/helper/posix"
	"gopkg.in/yaml.v3"
)

// Environment variables read by [Load].
const (
	EnvConfigFile = "TXN_EXTRACTOR_CONFIG_FILE"
	EnvInput      = "TXN_EXTRACTOR_INPUT"
	EnvOutput     = "TXN_EXTRACTOR_OUTPUT"
	EnvFlows      = "TXN_EXTRACTOR_FLOWS"
)

// Default file names, resolved next to the executable.
const (
	DefaultInput       = "payments.csv"
	DefaultOutput      = "request_ids.csv"
	DefaultParseOutput = "parsed_payments.csv"
)

// Summary formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// ErrInvalidSummaryFormat is returned when summaryFormat is neither
// "table" nor "json".
var ErrInvalidSummaryFormat = errors.New("invalid summary format")

// format represents supported configuration file formats.
type format int

const (
	// formatJSON represents JSON configuration format (.json)
	formatJSON format = iota
	// formatYAML represents YAML configuration format (.yaml, .yml)
	formatYAML
)

// Config holds the settings of the extractor commands and the MCP server.
type Config struct {
	// Input: CSV export to read
	Input string `json:"input" yaml:"input"`
	// Output: destination of the extract command
	Output string `json:"output" yaml:"output"`
	// ParseOutput: destination of the parse command
	ParseOutput string `json:"parseOutput" yaml:"parseOutput"`
	// Flows: flow names kept by the extract command
	Flows []string `json:"flows" yaml:"flows"`
	// LazyQuotes: tolerate bare quotes in CSV cells
	LazyQuotes bool `json:"lazyQuotes" yaml:"lazyQuotes"`
	// SummaryFormat: "table" or "json"
	SummaryFormat string `json:"summaryFormat" yaml:"summaryFormat"`

	// Log: diagnostics destination
	Log struct {
		// Silent: suppress diagnostics (MCP server only)
		Silent bool `json:"silent" yaml:"silent"`
		// Path: file receiving diagnostics instead of standard error
		Path string `json:"path,omitempty" yaml:"path,omitempty"`
	} `json:"log" yaml:"log"`
}

// Default returns the configuration used when no file or environment
// variable is set.
func Default() *Config {
	cfg := &Config{
		Input:         posix.ResolvePath(DefaultInput),
		Output:        posix.ResolvePath(DefaultOutput),
		ParseOutput:   posix.ResolvePath(DefaultParseOutput),
		Flows:         []string{"Authorize", "SetupMandate"},
		LazyQuotes:    true,
		SummaryFormat: FormatTable,
	}
	cfg.Log.Silent = true
	return cfg
}

// detectFormat determines the configuration file format based on file extension.
// Matching is case-insensitive; anything other than .yaml or .yml is JSON.
func detectFormat(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

// unmarshal decodes data into cfg according to f.
func unmarshal(data []byte, cfg *Config, f format) error {
	switch f {
	case formatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load builds the configuration from defaults, the file at path (or the file
// named by TXN_EXTRACTOR_CONFIG_FILE when path is empty) and the environment.
//
// Relative paths inside a config file are taken relative to the directory of
// that file. An empty flow list in the file falls back to the default flows.
//
// Returns an error if the file cannot be read or parsed, or if the summary
// format is unknown.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := unmarshal(data, cfg, detectFormat(path)); err != nil {
			return nil, err
		}

		dir := filepath.Dir(path)
		cfg.Input = relativeTo(dir, cfg.Input)
		cfg.Output = relativeTo(dir, cfg.Output)
		cfg.ParseOutput = relativeTo(dir, cfg.ParseOutput)
		cfg.Log.Path = relativeTo(dir, cfg.Log.Path)

		if len(cfg.Flows) == 0 {
			cfg.Flows = Default().Flows
		}
	}

	if v := os.Getenv(EnvInput); v != "" {
		cfg.Input = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv(EnvFlows); v != "" {
		cfg.Flows = SplitFlows(v)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks fields that have a closed set of values.
func (c *Config) Validate() error {
	c.SummaryFormat = strings.ToLower(strings.TrimSpace(c.SummaryFormat))
	if c.SummaryFormat == "" {
		c.SummaryFormat = FormatTable
	}
	if !slices.Contains([]string{FormatTable, FormatJSON}, c.SummaryFormat) {
		return fmt.Errorf("%w: %q", ErrInvalidSummaryFormat, c.SummaryFormat)
	}
	return nil
}

// SplitFlows parses a comma separated flow list, dropping blanks.
func SplitFlows(s string) []string {
	var flows []string
	for f := range strings.SplitSeq(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			flows = append(flows, f)
		}
	}
	return flows
}

func relativeTo(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
