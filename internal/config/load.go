// SPDX-License-Identifier: MIT
// Copyright (c) 2026 crab21
// Source: github.com/crab21/globset

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. GLOBSET_FORMAT=json.
const EnvPrefix = "GLOBSET_"

// Defaults returns the baseline configuration.
func Defaults() Config {
	f := false
	return Config{
		Input:           "-",
		Format:          "ndjson",
		InvalidLines:    "empty",
		LogLevel:        "info",
		Pretty:          &f,
		CaseInsensitive: &f,
		CleanPaths:      &f,
	}
}

// LoadFile reads a configuration file. Files ending in .yaml or .yml are
// YAML, anything else is TOML. Unknown keys are errors.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	parse := Parse
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parse = ParseYAML
	}

	cfg, err := parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes TOML configuration data strictly.
func Parse(data []byte) (Config, error) {
	var cfg Config

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("unknown keys:\n%s", strict.String())
		}

		return Config{}, err
	}

	return cfg, nil
}

// ParseYAML decodes YAML configuration data strictly.
func ParseYAML(data []byte) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}

	return cfg, nil
}

// Merge overlays set fields of over onto base.
// Pattern lists are replaced, not appended.
func Merge(base, over Config) Config {
	out := base

	if len(over.Patterns) > 0 {
		out.Patterns = cloneStrings(over.Patterns)
	}
	if len(over.PatternFiles) > 0 {
		out.PatternFiles = cloneStrings(over.PatternFiles)
	}
	if over.PatternJSON != "" {
		out.PatternJSON = over.PatternJSON
	}
	if over.PatternJSONQuery != "" {
		out.PatternJSONQuery = over.PatternJSONQuery
	}
	if len(over.Extensions) > 0 {
		out.Extensions = cloneStrings(over.Extensions)
	}

	if over.Input != "" {
		out.Input = over.Input
	}
	if over.Encoding != "" {
		out.Encoding = over.Encoding
	}
	if over.InvalidLines != "" {
		out.InvalidLines = over.InvalidLines
	}

	if over.Output != "" {
		out.Output = over.Output
	}
	if over.Format != "" {
		out.Format = over.Format
	}
	if over.Pretty != nil {
		out.Pretty = cloneBool(over.Pretty)
	}

	if over.CaseInsensitive != nil {
		out.CaseInsensitive = cloneBool(over.CaseInsensitive)
	}
	if over.CleanPaths != nil {
		out.CleanPaths = cloneBool(over.CleanPaths)
	}
	if over.MaxPatterns != 0 {
		out.MaxPatterns = over.MaxPatterns
	}

	if strings.TrimSpace(over.LogLevel) != "" {
		out.LogLevel = strings.TrimSpace(over.LogLevel)
	}

	return out
}

// EnvOverlay builds an overlay from GLOBSET_* variables in environ.
// Lists are comma separated.
func EnvOverlay(environ []string) (Config, error) {
	var over Config

	for _, kv := range environ {
		key, val, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}

		switch strings.TrimPrefix(key, EnvPrefix) {
		case "PATTERNS":
			over.Patterns = splitComma(val)
		case "PATTERN_FILES":
			over.PatternFiles = splitComma(val)
		case "PATTERN_JSON":
			over.PatternJSON = strings.TrimSpace(val)
		case "PATTERN_JSON_QUERY":
			over.PatternJSONQuery = strings.TrimSpace(val)
		case "EXTENSIONS":
			over.Extensions = splitComma(val)
		case "INPUT":
			over.Input = strings.TrimSpace(val)
		case "ENCODING":
			over.Encoding = strings.TrimSpace(val)
		case "INVALID_LINES":
			over.InvalidLines = strings.TrimSpace(val)
		case "OUTPUT":
			over.Output = strings.TrimSpace(val)
		case "FORMAT":
			over.Format = strings.TrimSpace(val)
		case "PRETTY":
			b, err := parseBool(key, val)
			if err != nil {
				return Config{}, err
			}
			over.Pretty = b
		case "CASE_INSENSITIVE":
			b, err := parseBool(key, val)
			if err != nil {
				return Config{}, err
			}
			over.CaseInsensitive = b
		case "CLEAN_PATHS":
			b, err := parseBool(key, val)
			if err != nil {
				return Config{}, err
			}
			over.CleanPaths = b
		case "MAX_PATTERNS":
			n, err := strconv.Atoi(strings.TrimSpace(val))
			if err != nil {
				return Config{}, fmt.Errorf("%s: %w", key, err)
			}
			over.MaxPatterns = n
		case "LOG_LEVEL":
			over.LogLevel = strings.TrimSpace(val)
		}
	}

	return over, nil
}

func parseBool(key, val string) (*bool, error) {
	if strings.TrimSpace(val) == "" {
		return nil, nil
	}

	b, err := strconv.ParseBool(strings.TrimSpace(val))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}

	return &b, nil
}

func splitComma(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneBool(in *bool) *bool {
	v := *in
	return &v
}
