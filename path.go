// SPDX-License-Identifier: MIT
// Copyright (c) 2026 crab21
// Source: github.com/crab21/globset

package globset

import (
	"path"
	"strings"
)

// normalizePath converts candidate to clean slash-separated form.
// Leading "/" is kept so absolute candidates stay absolute.
func normalizePath(raw string) string {
	if strings.Contains(raw, `\`) {
		raw = strings.ReplaceAll(raw, `\`, `/`)
	}

	// Fast path for already-normalized paths.
	if isSimpleNormalizedPath(raw) {
		return raw
	}

	raw = path.Clean(raw)
	if raw == "." {
		return ""
	}

	return raw
}

// asciiLower converts only ASCII A-Z to a-z and leaves all other bytes unchanged.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}

			return string(b)
		}
	}

	return s
}

// isSimpleNormalizedPath reports whether path is already normalized enough to skip path.Clean.
func isSimpleNormalizedPath(p string) bool {
	if p == "" {
		return true
	}

	if p == "." ||
		p == ".." ||
		(len(p) > 1 && strings.HasSuffix(p, "/")) ||
		strings.HasPrefix(p, "./") ||
		strings.HasPrefix(p, "../") ||
		strings.Contains(p, "//") ||
		strings.Contains(p, "/./") ||
		strings.Contains(p, "/../") ||
		strings.HasSuffix(p, "/.") ||
		strings.HasSuffix(p, "/..") {
		return false
	}

	return true
}
