// SPDX-License-Identifier: MIT
// Copyright (c) 2026 crab21
// Source: github.com/crab21/globset

package globset

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"testing/iotest"
)

func collectLines(t *testing.T, src *LineSource) []string {
	t.Helper()

	lines := slices.Collect(src.All())
	if err := src.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}

	return lines
}

func TestLineSourceSplitsLines(t *testing.T) {
	t.Parallel()

	src, err := NewLineSource(strings.NewReader("\xEF\xBB\xBFmain.rs\r\n  padded  \n\nlast"), SourceOptions{})
	if err != nil {
		t.Fatalf("NewLineSource: %v", err)
	}

	got := collectLines(t, src)
	want := []string{"main.rs", "  padded  ", "", "last"}
	if !slices.Equal(got, want) {
		t.Fatalf("lines=%q, want %q", got, want)
	}

	if src.Lines() != 4 || src.Degraded() != 0 {
		t.Fatalf("Lines=%d Degraded=%d", src.Lines(), src.Degraded())
	}
}

func TestLineSourceTrailingNewline(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]int{"": 0, "\n": 1, "a\n": 1, "a\nb\n": 2, "a\nb": 2} {
		src, err := NewLineSource(strings.NewReader(input), SourceOptions{})
		if err != nil {
			t.Fatalf("NewLineSource: %v", err)
		}

		if got := collectLines(t, src); len(got) != want {
			t.Fatalf("input %q: %d lines, want %d", input, len(got), want)
		}
	}
}

func TestLineSourceLongLine(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 200*1024)
	src, err := NewLineSource(strings.NewReader(long+"\nshort\n"), SourceOptions{BufSize: 16})
	if err != nil {
		t.Fatalf("NewLineSource: %v", err)
	}

	got := collectLines(t, src)
	if len(got) != 2 || got[0] != long || got[1] != "short" {
		t.Fatalf("unexpected lines: %d", len(got))
	}
}

func TestLineSourceInvalidEmpty(t *testing.T) {
	t.Parallel()

	var degraded []int
	src, err := NewLineSource(strings.NewReader("a.txt\nbad\xff.txt\nc.txt\n"), SourceOptions{
		OnInvalid: func(line int) { degraded = append(degraded, line) },
	})
	if err != nil {
		t.Fatalf("NewLineSource: %v", err)
	}

	got := collectLines(t, src)
	if !slices.Equal(got, []string{"a.txt", "", "c.txt"}) {
		t.Fatalf("lines=%q", got)
	}

	if !slices.Equal(degraded, []int{2}) || src.Degraded() != 1 {
		t.Fatalf("degraded=%v Degraded()=%d", degraded, src.Degraded())
	}
}

func TestLineSourceInvalidReplace(t *testing.T) {
	t.Parallel()

	src, err := NewLineSource(strings.NewReader("bad\xff.txt\n"), SourceOptions{Invalid: InvalidReplace})
	if err != nil {
		t.Fatalf("NewLineSource: %v", err)
	}

	got := collectLines(t, src)
	if !slices.Equal(got, []string{"bad�.txt"}) {
		t.Fatalf("lines=%q", got)
	}
}

func TestLineSourceEncoding(t *testing.T) {
	t.Parallel()

	// "café.txt" in windows-1252.
	src, err := NewLineSource(strings.NewReader("caf\xe9.txt\n"), SourceOptions{Encoding: "latin1"})
	if err != nil {
		t.Fatalf("NewLineSource: %v", err)
	}

	got := collectLines(t, src)
	if !slices.Equal(got, []string{"café.txt"}) {
		t.Fatalf("lines=%q", got)
	}

	if _, err := NewLineSource(strings.NewReader(""), SourceOptions{Encoding: "no-such-charset"}); !errors.Is(err, ErrUnknownEncoding) {
		t.Fatalf("err=%v, want ErrUnknownEncoding", err)
	}

	utf8Src, err := NewLineSource(strings.NewReader("bad\xff\n"), SourceOptions{Encoding: "UTF-8"})
	if err != nil {
		t.Fatalf("NewLineSource(utf-8): %v", err)
	}

	if got := collectLines(t, utf8Src); !slices.Equal(got, []string{""}) {
		t.Fatalf("utf-8 label must keep invalid line policy: %q", got)
	}
}

func TestLineSourceReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src, err := NewLineSource(iotest.ErrReader(boom), SourceOptions{})
	if err != nil {
		t.Fatalf("NewLineSource: %v", err)
	}

	if got := slices.Collect(src.All()); len(got) != 0 {
		t.Fatalf("lines=%q, want none", got)
	}

	if !errors.Is(src.Err(), boom) {
		t.Fatalf("Err=%v, want boom", src.Err())
	}
}

func TestOpenLineSource(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "files.txt")
	if err := os.WriteFile(path, []byte("main.rs\nsrc/lib/mod.rs\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	src, err := OpenLineSource(path, SourceOptions{})
	if err != nil {
		t.Fatalf("OpenLineSource: %v", err)
	}
	defer func() { _ = src.Close() }()

	if got := collectLines(t, src); !slices.Equal(got, []string{"main.rs", "src/lib/mod.rs"}) {
		t.Fatalf("lines=%q", got)
	}

	if _, err := OpenLineSource(filepath.Join(t.TempDir(), "missing"), SourceOptions{}); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err=%v, want os.ErrNotExist", err)
	}
}

func TestParseInvalidPolicy(t *testing.T) {
	t.Parallel()

	if p, err := ParseInvalidPolicy("Replace"); err != nil || p != InvalidReplace {
		t.Fatalf("ParseInvalidPolicy(Replace)=%v, %v", p, err)
	}

	if p, err := ParseInvalidPolicy(""); err != nil || p != InvalidEmpty {
		t.Fatalf("ParseInvalidPolicy(\"\")=%v, %v", p, err)
	}

	if _, err := ParseInvalidPolicy("drop"); err == nil {
		t.Fatalf("ParseInvalidPolicy(drop) must fail")
	}
}
