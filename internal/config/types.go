// SPDX-License-Identifier: MIT
// Copyright (c) 2026 crab21
// Source: github.com/crab21/globset

// Package config loads and layers globset CLI configuration:
// defaults, TOML or YAML file, GLOBSET_* environment, command-line flags.
package config

// Config is the resolved run configuration. Zero values mean "not set" when
// used as an overlay for Merge; booleans are pointers for the same reason.
type Config struct {
	// Patterns are inline glob patterns.
	Patterns []string `toml:"patterns" yaml:"patterns"`
	// PatternFiles are files with one pattern per line.
	PatternFiles []string `toml:"pattern_files" yaml:"pattern_files"`
	// PatternJSON is a JSON document holding a pattern array.
	PatternJSON string `toml:"pattern_json" yaml:"pattern_json"`
	// PatternJSONQuery is a gjson path into PatternJSON.
	PatternJSONQuery string `toml:"pattern_json_query" yaml:"pattern_json_query"`
	// Extensions become "*.ext" patterns.
	Extensions []string `toml:"extensions" yaml:"extensions"`

	// Input is the candidates file, "-" for stdin.
	Input string `toml:"input" yaml:"input"`
	// Encoding is the candidates file encoding label.
	Encoding string `toml:"encoding" yaml:"encoding"`
	// InvalidLines is "empty" or "replace".
	InvalidLines string `toml:"invalid_lines" yaml:"invalid_lines"`

	// Output is the destination file, empty for stdout.
	Output string `toml:"output" yaml:"output"`
	// Format is "ndjson", "json" or "summary".
	Format string `toml:"format" yaml:"format"`
	// Pretty indents JSON output.
	Pretty *bool `toml:"pretty" yaml:"pretty"`

	// CaseInsensitive enables ASCII case folding.
	CaseInsensitive *bool `toml:"case_insensitive" yaml:"case_insensitive"`
	// CleanPaths matches candidates in cleaned path form.
	CleanPaths *bool `toml:"clean_paths" yaml:"clean_paths"`
	// MaxPatterns limits pattern count, 0 is unlimited.
	MaxPatterns int `toml:"max_patterns" yaml:"max_patterns"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// Bool dereferences an optional flag.
func Bool(p *bool) bool {
	return p != nil && *p
}
