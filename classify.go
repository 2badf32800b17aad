// SPDX-License-Identifier: MIT
// Copyright (c) 2026 crab21
// Source: github.com/crab21/globset

package globset

import "iter"

// ClassifyOne returns the classification record of one candidate.
func (m *Matcher) ClassifyOne(candidate string) Record {
	matches := m.Matches(candidate)
	return Record{
		Matches: matches,
		IsMatch: len(matches) > 0,
		Subject: candidate,
	}
}

// Classify lazily yields one record per candidate in candidate order.
//
// The sequence holds no resources, so a caller may stop ranging at any time.
func (m *Matcher) Classify(candidates iter.Seq[string]) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for candidate := range candidates {
			if !yield(m.ClassifyOne(candidate)) {
				return
			}
		}
	}
}

// ClassifyAll classifies a slice of candidates.
func (m *Matcher) ClassifyAll(candidates []string) []Record {
	out := make([]Record, 0, len(candidates))
	for _, candidate := range candidates {
		out = append(out, m.ClassifyOne(candidate))
	}

	return out
}
