// SPDX-License-Identifier: MIT
// Copyright (c) 2026 crab21
// Source: github.com/crab21/globset

package globset

// Pattern is one compiled glob with its stable input position.
type Pattern struct {
	// Glob is the pattern text as supplied to Compile.
	Glob string `json:"glob" yaml:"glob"`
	// Index is the 0-based position in the Compile input list.
	Index int `json:"index" yaml:"index"`
}

// MatcherOptions controls matcher behavior.
type MatcherOptions struct {
	// CaseInsensitive enables ASCII case-insensitive matching.
	CaseInsensitive bool `json:"case_insensitive,omitempty" yaml:"case_insensitive,omitempty"`
	// CleanPaths matches candidates in cleaned slash form ("./a//b" as "a/b").
	// Record subjects always keep the raw candidate.
	CleanPaths bool `json:"clean_paths,omitempty" yaml:"clean_paths,omitempty"`
	// MaxPatterns limits the number of compiled patterns, 0 means unlimited.
	MaxPatterns int `json:"max_patterns,omitempty" yaml:"max_patterns,omitempty"`
}

// Record is the classification result of one candidate.
type Record struct {
	// Matches lists matched pattern indices in ascending order, never nil.
	Matches []int `json:"matches" yaml:"matches"`
	// IsMatch reports whether Matches is non-empty.
	IsMatch bool `json:"is_match" yaml:"is_match"`
	// Subject is the candidate exactly as received.
	Subject string `json:"subject" yaml:"subject"`
}

// Stats summarizes one Run.
type Stats struct {
	// Candidates is the number of classified candidates.
	Candidates int `json:"candidates" yaml:"candidates"`
	// Matched is the number of candidates with at least one match.
	Matched int `json:"matched" yaml:"matched"`
}
