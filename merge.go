// SPDX-License-Identifier: MIT
// Copyright (c) 2026 crab21
// Source: github.com/crab21/globset

package globset

// MergePatterns merges pattern slices preserving input order.
// Duplicates are kept because position is pattern identity.
func MergePatterns(sets ...[]string) []string {
	total := 0
	for _, set := range sets {
		total += len(set)
	}

	out := make([]string, 0, total)
	for _, set := range sets {
		out = append(out, set...)
	}

	return out
}
