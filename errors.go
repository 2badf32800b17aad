// SPDX-License-Identifier: MIT
// Copyright (c) 2026 crab21
// Source: github.com/crab21/globset

package globset

import (
	"errors"
	"fmt"
)

// Sentinel errors for globset operations.
var (
	// ErrInvalidPattern indicates malformed glob syntax in one input pattern.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrBuildFailed indicates matcher construction failed after all patterns parsed.
	ErrBuildFailed = errors.New("matcher build failed")
	// ErrUnknownFormat indicates unsupported output format name.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrUnknownEncoding indicates unsupported candidate source encoding label.
	ErrUnknownEncoding = errors.New("unknown encoding")
	// ErrNotStringArray indicates JSON pattern source did not resolve to an array of strings.
	ErrNotStringArray = errors.New("not an array of strings")
)

// PatternError reports the first pattern that failed to parse.
type PatternError struct {
	// Pattern is the raw pattern text as supplied.
	Pattern string
	// Reason describes what is wrong with the pattern.
	Reason string
	// Index is the pattern position in the input list.
	Index int
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("%v: pattern %d (%q): %s", ErrInvalidPattern, e.Index, e.Pattern, e.Reason)
}

// Unwrap returns ErrInvalidPattern.
func (e *PatternError) Unwrap() error {
	return ErrInvalidPattern
}

// BuildError reports matcher construction failure.
type BuildError struct {
	// Reason describes why construction failed.
	Reason string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%v: %s", ErrBuildFailed, e.Reason)
}

// Unwrap returns ErrBuildFailed.
func (e *BuildError) Unwrap() error {
	return ErrBuildFailed
}
