// SPDX-License-Identifier: MIT
// Copyright (c) 2026 crab21
// Source: github.com/crab21/globset

package globset

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/armon/go-radix"
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/match"
)

const (
	// literalFilterMinSize is the literal count from which misses are screened by a
	// bloom filter before touching the literal map.
	literalFilterMinSize = 4096
	// literalFalsePositiveRate is the bloom pre-screen false positive target.
	literalFalsePositiveRate = 0.01
)

// patternIndex groups compiled patterns by strategy for one-pass multi-pattern queries.
type patternIndex struct {
	// literals maps whole-candidate literals to pattern indices.
	literals map[string][]int
	// literalFilter screens candidates before lookups in large literal maps.
	literalFilter *bloom.BloomFilter
	// extensions maps ".ext" to pattern indices of "*.ext" patterns.
	extensions map[string][]int
	// suffixes holds "*literal" patterns.
	suffixes []compiledPattern
	// wildcards holds slash-free "*" and "?" patterns.
	wildcards []compiledPattern
	// components holds slash-free class/brace patterns.
	components []compiledPattern
	// general buckets reference-engine patterns by literal prefix.
	general *radix.Tree
	// all holds every pattern for candidates that are not valid UTF-8.
	all []compiledPattern
}

// generalBucket holds general patterns sharing one literal prefix.
type generalBucket struct {
	patterns []compiledPattern
}

// newPatternIndex distributes compiled patterns across strategy buckets.
func newPatternIndex(compiled []compiledPattern) *patternIndex {
	x := &patternIndex{all: compiled}

	for _, cp := range compiled {
		switch cp.kind {
		case strategyLiteral:
			if x.literals == nil {
				x.literals = make(map[string][]int)
			}

			x.literals[cp.literal] = append(x.literals[cp.literal], cp.index)
		case strategyExtension:
			if x.extensions == nil {
				x.extensions = make(map[string][]int)
			}

			x.extensions[cp.literal] = append(x.extensions[cp.literal], cp.index)
		case strategySuffix:
			x.suffixes = append(x.suffixes, cp)
		case strategyWildcard:
			x.wildcards = append(x.wildcards, cp)
		case strategyComponent:
			x.components = append(x.components, cp)
		default:
			if x.general == nil {
				x.general = radix.New()
			}

			if v, ok := x.general.Get(cp.literal); ok {
				bucket := v.(*generalBucket)
				bucket.patterns = append(bucket.patterns, cp)
				continue
			}

			x.general.Insert(cp.literal, &generalBucket{patterns: []compiledPattern{cp}})
		}
	}

	if len(x.literals) >= literalFilterMinSize {
		x.literalFilter = bloom.NewWithEstimates(uint(len(x.literals)), literalFalsePositiveRate)
		for lit := range x.literals {
			x.literalFilter.AddString(lit)
		}
	}

	return x
}

// appendMatches appends ascending matched pattern indices for a prepared candidate.
func (x *patternIndex) appendMatches(dst []int, candidate string) []int {
	start := len(dst)

	// The reference engine decodes invalid bytes as U+FFFD, byte-level strategies do not.
	if !utf8.ValidString(candidate) {
		for i := range x.all {
			if doublestar.MatchUnvalidated(x.all[i].text, candidate) {
				dst = append(dst, x.all[i].index)
			}
		}

		return dst
	}

	if x.literals != nil && (x.literalFilter == nil || x.literalFilter.TestString(candidate)) {
		dst = append(dst, x.literals[candidate]...)
	}

	// Slash-free strategies never match across a separator.
	if strings.IndexByte(candidate, '/') < 0 {
		if x.extensions != nil {
			if dot := strings.LastIndexByte(candidate, '.'); dot >= 0 {
				dst = append(dst, x.extensions[candidate[dot:]]...)
			}
		}

		for i := range x.suffixes {
			if strings.HasSuffix(candidate, x.suffixes[i].literal) {
				dst = append(dst, x.suffixes[i].index)
			}
		}

		for i := range x.wildcards {
			if match.Match(candidate, x.wildcards[i].text) {
				dst = append(dst, x.wildcards[i].index)
			}
		}

		ascii := isASCII(candidate)
		for i := range x.components {
			cp := &x.components[i]
			// The automaton splits fixed-length rows by bytes, which breaks on multi-byte runes.
			var matched bool
			if ascii {
				matched = cp.component.Match(candidate)
			} else {
				matched = doublestar.MatchUnvalidated(cp.text, candidate)
			}

			if matched {
				dst = append(dst, cp.index)
			}
		}
	}

	if x.general != nil {
		x.general.WalkPath(candidate, func(_ string, v interface{}) bool {
			for _, cp := range v.(*generalBucket).patterns {
				if doublestar.MatchUnvalidated(cp.text, candidate) {
					dst = append(dst, cp.index)
				}
			}

			return false
		})
	}

	// Each index lives in exactly one bucket, so sorting is enough for a strict ascending set.
	slices.Sort(dst[start:])
	return dst
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}

	return true
}
