// SPDX-License-Identifier: MIT
// Copyright (c) 2026 crab21
// Source: github.com/crab21/globset

package globset

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"
)

// globMeta lists bytes that make a pattern non-literal.
const globMeta = `*?[{\`

// strategy is the matching engine chosen for one compiled pattern.
type strategy uint8

const (
	// strategyLiteral matches the whole candidate byte for byte.
	strategyLiteral strategy = iota
	// strategyExtension matches "*.ext" against the final extension of a slash-free candidate.
	strategyExtension
	// strategySuffix matches "*literal" against a slash-free candidate suffix.
	strategySuffix
	// strategyWildcard matches slash-free "*" and "?" patterns.
	strategyWildcard
	// strategyComponent matches slash-free patterns with plain positive classes.
	strategyComponent
	// strategyGeneral matches anything else with the reference engine.
	strategyGeneral
)

// compiledPattern is matcher-internal compiled representation of one pattern.
type compiledPattern struct {
	// component is the precompiled automaton for strategyComponent.
	component glob.Glob
	// text is the pattern after case folding.
	text string
	// literal is the literal payload: whole text, extension, suffix or general prefix.
	literal string
	// index is the pattern position in Compile input.
	index int
	// kind is the selected strategy.
	kind strategy
}

// compilePattern compiles one validated pattern into the cheapest matching strategy
// that preserves doublestar semantics.
func compilePattern(index int, pattern string, caseInsensitive bool) compiledPattern {
	if caseInsensitive {
		pattern = asciiLower(pattern)
	}

	cp := compiledPattern{
		index: index,
		text:  pattern,
	}

	// Invalid UTF-8 compares as U+FFFD in the reference engine, so byte-level
	// strategies would disagree with it.
	if !utf8.ValidString(pattern) {
		cp.kind = strategyGeneral
		cp.literal = literalPrefix(pattern)
		return cp
	}

	if !strings.ContainsAny(pattern, globMeta) {
		cp.kind = strategyLiteral
		cp.literal = pattern
		return cp
	}

	// Slash-free patterns can only match slash-free candidates, unless "**" stands for a
	// whole segment or a negated class stands for "/", so they skip the reference engine.
	if !strings.Contains(pattern, "/") && !strings.Contains(pattern, "**") {
		if rest, ok := strings.CutPrefix(pattern, "*"); ok && !strings.ContainsAny(rest, globMeta) {
			cp.literal = rest
			cp.kind = strategySuffix
			if isExtension(rest) {
				cp.kind = strategyExtension
			}

			return cp
		}

		if !strings.ContainsAny(pattern, `[{\`) {
			cp.kind = strategyWildcard
			return cp
		}

		if isASCII(pattern) && !strings.ContainsAny(pattern, `{}\`) && hasPlainClasses(pattern) {
			g, err := glob.Compile(pattern, '/')
			if err == nil && g.Match("") == doublestar.MatchUnvalidated(pattern, "") {
				cp.kind = strategyComponent
				cp.component = g
				return cp
			}
			// Syntax accepted by doublestar but not by the automaton builder falls through.
		}
	}

	cp.kind = strategyGeneral
	cp.literal = literalPrefix(pattern)
	return cp
}

// isExtension reports whether suffix has the ".ext" shape with exactly one dot.
func isExtension(suffix string) bool {
	return len(suffix) > 1 && suffix[0] == '.' && strings.IndexByte(suffix[1:], '.') < 0
}

// literalPrefix returns the pattern bytes before the first glob meta byte.
// Trailing "/" are dropped because "dir/**" also matches "dir" itself.
func literalPrefix(pattern string) string {
	if i := strings.IndexAny(pattern, globMeta); i >= 0 {
		pattern = pattern[:i]
	}

	return strings.TrimRight(pattern, "/")
}

// hasPlainClasses reports whether every character class in pattern is a set of
// plain characters ("[abc]") or one ascending ASCII range ("[a-z]").
// Negated classes, other range forms and stray "]" are left to the reference engine.
func hasPlainClasses(pattern string) bool {
	for {
		open := strings.IndexByte(pattern, '[')
		if open < 0 {
			return strings.IndexByte(pattern, ']') < 0
		}

		if strings.IndexByte(pattern[:open], ']') >= 0 {
			return false
		}

		end := strings.IndexByte(pattern[open+1:], ']')
		if end <= 0 {
			return false
		}

		body := pattern[open+1 : open+1+end]
		pattern = pattern[open+2+end:]

		switch {
		case body[0] == '!' || body[0] == '^' || strings.IndexByte(body, '[') >= 0:
			return false
		case len(body) == 3 && body[1] == '-':
			if body[0] > body[2] {
				return false
			}
		case strings.IndexByte(body, '-') >= 0:
			return false
		}
	}
}

// invalidReason describes why doublestar rejected a pattern.
func invalidReason(pattern string) string {
	depth := 0

	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++
			if i >= len(pattern) {
				return "trailing escape character"
			}
		case '[':
			end, reason := findCharClassEnd(pattern, i)
			if end < 0 {
				return fmt.Sprintf("%s at offset %d", reason, i)
			}

			i = end
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return fmt.Sprintf("unmatched '}' at offset %d", i)
			}

			depth--
		}
	}

	if depth > 0 {
		return "unclosed brace alternation"
	}

	return "malformed glob syntax"
}

// findCharClassEnd locates closing bracket for a glob char class starting at start.
func findCharClassEnd(pattern string, start int) (int, string) {
	idx := start + 1
	if idx < len(pattern) && (pattern[idx] == '!' || pattern[idx] == '^') {
		idx++
	}

	if idx < len(pattern) && pattern[idx] == ']' {
		return -1, "empty character class"
	}

	for ; idx < len(pattern); idx++ {
		switch pattern[idx] {
		case '\\':
			idx++
		case ']':
			return idx, ""
		}
	}

	return -1, "unclosed character class"
}
