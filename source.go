// SPDX-License-Identifier: MIT
// Copyright (c) 2026 crab21
// Source: github.com/crab21/globset

package globset

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

const defaultSourceBufSize = 64 * 1024

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// InvalidPolicy selects how lines with invalid UTF-8 degrade.
type InvalidPolicy uint8

const (
	// InvalidEmpty replaces an undecodable line with the empty string.
	InvalidEmpty InvalidPolicy = iota
	// InvalidReplace replaces each invalid byte sequence with U+FFFD.
	InvalidReplace
)

// ParseInvalidPolicy parses "empty" or "replace".
func ParseInvalidPolicy(s string) (InvalidPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "empty":
		return InvalidEmpty, nil
	case "replace":
		return InvalidReplace, nil
	default:
		return InvalidEmpty, fmt.Errorf("unknown invalid line policy %q", s)
	}
}

// SourceOptions configures a LineSource.
type SourceOptions struct {
	// OnInvalid is called with the 1-based line number of every degraded line.
	OnInvalid func(line int) `json:"-" yaml:"-"`
	// Encoding is a WHATWG encoding label, empty means UTF-8.
	Encoding string `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	// BufSize is the read buffer size, <=0 uses 64KiB.
	BufSize int `json:"buf_size,omitempty" yaml:"buf_size,omitempty"`
	// Invalid selects invalid UTF-8 handling.
	Invalid InvalidPolicy `json:"invalid,omitempty" yaml:"invalid,omitempty"`
}

// LineSource yields the lines of a text stream as candidates.
//
// Line terminators ("\n" and "\r\n") are removed, nothing else is trimmed.
// Read errors stop iteration and are reported by Err.
type LineSource struct {
	r         *bufio.Reader
	closer    io.Closer
	onInvalid func(line int)
	err       error
	name      string
	lines     int
	degraded  int
	policy    InvalidPolicy
	started   bool
}

// NewLineSource creates a line source reading from r.
func NewLineSource(r io.Reader, opts SourceOptions) (*LineSource, error) {
	return newLineSource(r, "<reader>", opts)
}

// OpenLineSource opens path as a line source, "-" reads standard input.
// The caller must Close the returned source.
func OpenLineSource(path string, opts SourceOptions) (*LineSource, error) {
	if path == "-" {
		return newLineSource(os.Stdin, "stdin", opts)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open candidates file: %w", err)
	}

	src, err := newLineSource(f, path, opts)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	src.closer = f
	return src, nil
}

func newLineSource(r io.Reader, name string, opts SourceOptions) (*LineSource, error) {
	decoded, err := decodingReader(r, opts.Encoding)
	if err != nil {
		return nil, err
	}

	size := opts.BufSize
	if size <= 0 {
		size = defaultSourceBufSize
	}

	return &LineSource{
		r:         bufio.NewReaderSize(decoded, size),
		name:      name,
		policy:    opts.Invalid,
		onInvalid: opts.OnInvalid,
	}, nil
}

// decodingReader wraps r with a transcoder to UTF-8 for non-UTF-8 labels.
func decodingReader(r io.Reader, label string) (io.Reader, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return r, nil
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
	}

	if name, _ := htmlindex.Name(enc); name == "utf-8" {
		return r, nil
	}

	return transform.NewReader(r, enc.NewDecoder()), nil
}

// All yields lines until end of input or a read error.
// A source can be iterated once.
func (s *LineSource) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		if s.started {
			return
		}
		s.started = true

		for {
			raw, err := s.r.ReadBytes('\n')
			if len(raw) > 0 {
				if !yield(s.decode(raw)) {
					return
				}
			}

			if err != nil {
				if !errors.Is(err, io.EOF) {
					s.err = fmt.Errorf("read candidates %s line %d: %w", s.name, s.lines+1, err)
				}

				return
			}
		}
	}
}

// decode strips the terminator and applies the invalid UTF-8 policy.
func (s *LineSource) decode(raw []byte) string {
	s.lines++

	raw = bytes.TrimSuffix(raw, []byte{'\n'})
	raw = bytes.TrimSuffix(raw, []byte{'\r'})
	if s.lines == 1 {
		raw = bytes.TrimPrefix(raw, utf8BOM)
	}

	if utf8.Valid(raw) {
		return string(raw)
	}

	s.degraded++
	if s.onInvalid != nil {
		s.onInvalid(s.lines)
	}

	if s.policy == InvalidReplace {
		return string(bytes.ToValidUTF8(raw, []byte(string(utf8.RuneError))))
	}

	return ""
}

// Err returns the first read error, nil at clean end of input.
func (s *LineSource) Err() error {
	return s.err
}

// Lines returns the number of lines yielded so far.
func (s *LineSource) Lines() int {
	return s.lines
}

// Degraded returns the number of lines that were not valid UTF-8.
func (s *LineSource) Degraded() int {
	return s.degraded
}

// Close releases the underlying file, if the source owns one.
func (s *LineSource) Close() error {
	if s.closer == nil {
		return nil
	}

	err := s.closer.Close()
	s.closer = nil
	return err
}
