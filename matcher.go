// SPDX-License-Identifier: MIT
// Copyright (c) 2026 crab21
// Source: github.com/crab21/globset

package globset

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher reports which of an ordered pattern list match a candidate.
//
// A Matcher is immutable after Compile and safe for concurrent use.
type Matcher struct {
	index           *patternIndex
	patterns        []Pattern
	caseInsensitive bool
	cleanPaths      bool
}

// Compile validates and compiles ordered glob patterns into a matcher.
//
// Compilation is all-or-nothing: the first malformed pattern aborts it with
// *PatternError and no matcher is returned. An empty list yields a matcher
// that matches nothing.
func Compile(patterns []string, opts MatcherOptions) (*Matcher, error) {
	for i, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, &PatternError{
				Index:   i,
				Pattern: pattern,
				Reason:  invalidReason(pattern),
			}
		}
	}

	if opts.MaxPatterns > 0 && len(patterns) > opts.MaxPatterns {
		return nil, &BuildError{
			Reason: fmt.Sprintf("%d patterns exceed limit of %d", len(patterns), opts.MaxPatterns),
		}
	}

	compiled := make([]compiledPattern, 0, len(patterns))
	sources := make([]Pattern, 0, len(patterns))
	for i, pattern := range patterns {
		compiled = append(compiled, compilePattern(i, pattern, opts.CaseInsensitive))
		sources = append(sources, Pattern{Index: i, Glob: pattern})
	}

	return &Matcher{
		index:           newPatternIndex(compiled),
		patterns:        sources,
		caseInsensitive: opts.CaseInsensitive,
		cleanPaths:      opts.CleanPaths,
	}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(patterns []string, opts MatcherOptions) *Matcher {
	m, err := Compile(patterns, opts)
	if err != nil {
		panic(err)
	}

	return m
}

// Len returns the number of compiled patterns.
func (m *Matcher) Len() int {
	if m == nil {
		return 0
	}

	return len(m.patterns)
}

// Patterns returns compiled patterns in input order.
func (m *Matcher) Patterns() []Pattern {
	if m == nil {
		return nil
	}

	out := make([]Pattern, len(m.patterns))
	copy(out, m.patterns)
	return out
}

// Matches returns ascending indices of all patterns matching candidate.
// The result is never nil.
func (m *Matcher) Matches(candidate string) []int {
	out := m.AppendMatches(nil, candidate)
	if out == nil {
		return []int{}
	}

	return out
}

// AppendMatches appends ascending indices of all patterns matching candidate to dst.
func (m *Matcher) AppendMatches(dst []int, candidate string) []int {
	if m == nil || len(m.patterns) == 0 {
		return dst
	}

	return m.index.appendMatches(dst, m.prepare(candidate))
}

// IsMatch reports whether at least one pattern matches candidate.
func (m *Matcher) IsMatch(candidate string) bool {
	var buf [8]int
	return len(m.AppendMatches(buf[:0], candidate)) > 0
}

// prepare applies candidate normalization selected by options.
func (m *Matcher) prepare(candidate string) string {
	if m.cleanPaths {
		candidate = normalizePath(candidate)
	}

	if m.caseInsensitive {
		candidate = asciiLower(candidate)
	}

	return candidate
}
