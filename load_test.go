// SPDX-License-Identifier: MIT
// Copyright (c) 2026 crab21
// Source: github.com/crab21/globset

package globset

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestLoadPatternsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "globs.txt")
	err := os.WriteFile(path, []byte("*.rs\nsrc/**/*.rs\n"), 0o600)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	patterns, err := LoadPatternsFile(path)
	if err != nil {
		t.Fatalf("LoadPatternsFile: %v", err)
	}

	if !slices.Equal(patterns, []string{"*.rs", "src/**/*.rs"}) {
		t.Fatalf("patterns=%q", patterns)
	}
}

func TestLoadPatternsFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadPatternsFile(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err=%v, want os.ErrNotExist", err)
	}
}

func TestLoadPatternsFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	p1 := filepath.Join(dir, "a.txt")
	p2 := filepath.Join(dir, "b.txt")

	if err := os.WriteFile(p1, []byte("*.go\n"), 0o600); err != nil {
		t.Fatalf("WriteFile(%s): %v", p1, err)
	}

	if err := os.WriteFile(p2, []byte("cmd/**\n*.go\n"), 0o600); err != nil {
		t.Fatalf("WriteFile(%s): %v", p2, err)
	}

	patterns, err := LoadPatternsFiles(p1, p2)
	if err != nil {
		t.Fatalf("LoadPatternsFiles: %v", err)
	}

	if !slices.Equal(patterns, []string{"*.go", "cmd/**", "*.go"}) {
		t.Fatalf("unexpected merged patterns: %q", patterns)
	}
}

func TestParsePatternsJSON(t *testing.T) {
	t.Parallel()

	doc := []byte(`{"lint":{"globs":["*.rs","src/**/*.rs"]},"bad":["*.go",1],"name":"x"}`)

	patterns, err := ParsePatternsJSON(doc, "lint.globs")
	if err != nil {
		t.Fatalf("ParsePatternsJSON: %v", err)
	}

	if !slices.Equal(patterns, []string{"*.rs", "src/**/*.rs"}) {
		t.Fatalf("patterns=%q", patterns)
	}

	root, err := ParsePatternsJSON([]byte(`["a","b"]`), "")
	if err != nil || !slices.Equal(root, []string{"a", "b"}) {
		t.Fatalf("root=%q err=%v", root, err)
	}

	for _, query := range []string{"bad", "name", "missing"} {
		if _, err := ParsePatternsJSON(doc, query); !errors.Is(err, ErrNotStringArray) {
			t.Fatalf("ParsePatternsJSON(%q) err=%v, want ErrNotStringArray", query, err)
		}
	}

	if _, err := ParsePatternsJSON([]byte(`{"a":`), ""); !errors.Is(err, ErrNotStringArray) {
		t.Fatalf("malformed json err=%v, want ErrNotStringArray", err)
	}
}

func TestLoadPatternsJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "globs.json")
	if err := os.WriteFile(path, []byte(`{"globs":["*.md"]}`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	patterns, err := LoadPatternsJSON(path, "globs")
	if err != nil {
		t.Fatalf("LoadPatternsJSON: %v", err)
	}

	if !slices.Equal(patterns, []string{"*.md"}) {
		t.Fatalf("patterns=%q", patterns)
	}
}
