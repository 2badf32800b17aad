// SPDX-License-Identifier: MIT
// Copyright (c) 2026 crab21
// Source: github.com/crab21/globset

package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig indicates a configuration value outside its allowed set.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks enumerated and numeric settings.
func Validate(cfg Config) error {
	switch strings.ToLower(cfg.Format) {
	case "", "ndjson", "json", "summary":
	default:
		return fmt.Errorf("%w: format %q (want ndjson, json or summary)", ErrInvalidConfig, cfg.Format)
	}

	switch strings.ToLower(cfg.InvalidLines) {
	case "", "empty", "replace":
	default:
		return fmt.Errorf("%w: invalid_lines %q (want empty or replace)", ErrInvalidConfig, cfg.InvalidLines)
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, cfg.LogLevel)
	}

	if cfg.MaxPatterns < 0 {
		return fmt.Errorf("%w: max_patterns %d is negative", ErrInvalidConfig, cfg.MaxPatterns)
	}

	if cfg.PatternJSONQuery != "" && cfg.PatternJSON == "" {
		return fmt.Errorf("%w: pattern_json_query requires pattern_json", ErrInvalidConfig)
	}

	if strings.TrimSpace(cfg.Input) == "" {
		return fmt.Errorf("%w: input is empty", ErrInvalidConfig)
	}

	return nil
}
