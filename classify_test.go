// SPDX-License-Identifier: MIT
// Copyright (c) 2026 crab21
// Source: github.com/crab21/globset

package globset

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"testing"
)

func TestClassifyPreservesOrderAndCount(t *testing.T) {
	t.Parallel()

	m := MustCompile([]string{"*.rs", "src/**/*.rs"}, MatcherOptions{})
	candidates := []string{"main.rs", "  spaced.rs  ", "src/lib/mod.rs", "README.md", "main.rs", ""}

	var got []Record
	for rec := range m.Classify(slices.Values(candidates)) {
		got = append(got, rec)
	}

	if len(got) != len(candidates) {
		t.Fatalf("len(records)=%d, want %d", len(got), len(candidates))
	}

	for i, rec := range got {
		if rec.Subject != candidates[i] {
			t.Fatalf("records[%d].Subject=%q, want %q", i, rec.Subject, candidates[i])
		}
	}

	if !slices.Equal(got[0].Matches, []int{0}) || !got[0].IsMatch {
		t.Fatalf("records[0]=%+v", got[0])
	}

	if len(got[1].Matches) != 0 || got[1].IsMatch {
		t.Fatalf("whitespace must be significant: records[1]=%+v", got[1])
	}

	if !slices.Equal(got[2].Matches, []int{1}) {
		t.Fatalf("records[2]=%+v", got[2])
	}

	if got[3].IsMatch || got[3].Matches == nil {
		t.Fatalf("records[3]=%+v", got[3])
	}
}

func TestClassifyRecordInvariants(t *testing.T) {
	t.Parallel()

	patterns := []string{"*", "**", "a*", "*.go", "a/**", "a/*/c", "{a,b}*", "[ab]?", "a/b/c"}
	m := MustCompile(patterns, MatcherOptions{})

	candidates := []string{"", "a", "ab", "x.go", "a/b", "a/b/c", "a/x/c", "b/c", "ba"}
	for _, rec := range m.ClassifyAll(candidates) {
		if rec.IsMatch != (len(rec.Matches) > 0) {
			t.Fatalf("IsMatch mismatch: %+v", rec)
		}

		for i, idx := range rec.Matches {
			if idx < 0 || idx >= len(patterns) {
				t.Fatalf("index %d out of range in %+v", idx, rec)
			}

			if i > 0 && rec.Matches[i-1] >= idx {
				t.Fatalf("matches not strictly ascending: %+v", rec)
			}
		}
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	t.Parallel()

	m := MustCompile([]string{"*.go", "cmd/**", "[a-c]*"}, MatcherOptions{})
	candidates := make([]string, 0, 64)
	for i := range 64 {
		candidates = append(candidates, fmt.Sprintf("cmd/%c%d.go", 'a'+rune(i%5), i))
		candidates = append(candidates, fmt.Sprintf("%c.go", 'a'+rune(i%5)))
	}

	first := m.ClassifyAll(candidates)
	second := slices.Collect(m.Classify(slices.Values(candidates)))

	slices.Reverse(candidates)
	reversed := m.ClassifyAll(candidates)
	slices.Reverse(reversed)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Classify and ClassifyAll disagree")
	}

	if !reflect.DeepEqual(first, reversed) {
		t.Fatalf("query order changed results")
	}
}

func TestClassifyStopsEarly(t *testing.T) {
	t.Parallel()

	m := MustCompile([]string{"*"}, MatcherOptions{})

	produced := 0
	candidates := func(yield func(string) bool) {
		for i := 0; ; i++ {
			produced++
			if !yield(fmt.Sprint(i)) {
				return
			}
		}
	}

	n := 0
	for range m.Classify(candidates) {
		n++
		if n == 3 {
			break
		}
	}

	if produced != 3 {
		t.Fatalf("produced=%d candidates, want 3", produced)
	}
}

func TestClassifyToleratesMalformedCandidate(t *testing.T) {
	t.Parallel()

	m := MustCompile([]string{"*.txt", ""}, MatcherOptions{})
	bad := "bad\xff\xfe.txt"
	got := m.ClassifyAll([]string{"a.txt", bad, "", "b.txt"})

	if len(got) != 4 {
		t.Fatalf("len=%d, want 4", len(got))
	}

	if got[1].Subject != bad || !slices.Equal(got[1].Matches, []int{0}) {
		t.Fatalf("records[1]=%+v", got[1])
	}

	if !slices.Equal(got[2].Matches, []int{1}) {
		t.Fatalf("records[2]=%+v", got[2])
	}

	if !strings.HasSuffix(got[3].Subject, ".txt") || !got[3].IsMatch {
		t.Fatalf("records[3]=%+v", got[3])
	}
}
