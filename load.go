// SPDX-License-Identifier: MIT
// Copyright (c) 2026 crab21
// Source: github.com/crab21/globset

package globset

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// LoadPatternsFile reads and parses patterns from a file.
func LoadPatternsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open patterns file: %w", err)
	}
	defer func() { _ = f.Close() }()

	patterns, err := ParsePatterns(f)
	if err != nil {
		return nil, fmt.Errorf("parse patterns file %s: %w", path, err)
	}

	return patterns, nil
}

// LoadPatternsFiles reads and merges patterns from files in the given order.
//
// Returned patterns preserve file order and pattern order inside each file.
func LoadPatternsFiles(paths ...string) ([]string, error) {
	out := make([]string, 0, len(paths)*8)
	for _, path := range paths {
		patterns, err := LoadPatternsFile(path)
		if err != nil {
			return nil, err
		}

		out = append(out, patterns...)
	}

	return out, nil
}

// LoadPatternsJSON reads patterns from a JSON document.
// See ParsePatternsJSON for query semantics.
func LoadPatternsJSON(path string, query string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read patterns json: %w", err)
	}

	patterns, err := ParsePatternsJSON(data, query)
	if err != nil {
		return nil, fmt.Errorf("parse patterns json %s: %w", path, err)
	}

	return patterns, nil
}

// ParsePatternsJSON extracts an array of glob strings from a JSON document.
//
// query is a gjson path such as "lint.globs"; empty query selects the document root.
// Every array element must be a string, non-string elements are rejected rather than
// silently replaced.
func ParsePatternsJSON(data []byte, query string) ([]string, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed json", ErrNotStringArray)
	}

	res := gjson.ParseBytes(data)
	if query != "" {
		res = res.Get(query)
	}

	if !res.Exists() {
		return nil, fmt.Errorf("%w: path %q not found", ErrNotStringArray, query)
	}

	if !res.IsArray() {
		return nil, fmt.Errorf("%w: path %q is %s", ErrNotStringArray, query, res.Type)
	}

	items := res.Array()
	out := make([]string, 0, len(items))
	for i, item := range items {
		if item.Type != gjson.String {
			return nil, fmt.Errorf("%w: element %d is %s", ErrNotStringArray, i, item.Type)
		}

		out = append(out, item.Str)
	}

	return out, nil
}
