// SPDX-License-Identifier: MIT
// Copyright (c) 2026 crab21
// Source: github.com/crab21/globset

package globset

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Output format names accepted by NewSink.
const (
	FormatNDJSON  = "ndjson"
	FormatJSON    = "json"
	FormatSummary = "summary"
)

const defaultSinkBufSize = 64 * 1024

// errSinkClosed is returned by Put after Flush finished an array or summary document.
var errSinkClosed = errors.New("sink already flushed")

// Pretty printing keeps short arrays such as "matches" on one line.
var (
	prettyDocument = &pretty.Options{Width: 80, Indent: "  "}
	prettyElement  = &pretty.Options{Width: 80, Prefix: "  ", Indent: "  "}
)

// Sink consumes classification records in production order.
type Sink interface {
	// Put consumes one record.
	Put(rec Record) error
	// Flush completes the output and flushes buffered data.
	Flush() error
}

// SinkOptions configures sinks created by NewSink.
type SinkOptions struct {
	// Patterns are compiled patterns, required by the summary format.
	Patterns []Pattern `json:"-" yaml:"-"`
	// Pretty indents JSON array and summary output.
	Pretty bool `json:"pretty,omitempty" yaml:"pretty,omitempty"`
}

// NewSink creates a sink for a named output format writing to w.
// Empty format selects ndjson.
func NewSink(format string, w io.Writer, opts SinkOptions) (Sink, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatNDJSON:
		return NewNDJSONSink(w), nil
	case FormatJSON:
		return NewJSONArraySink(w, opts.Pretty), nil
	case FormatSummary:
		return NewSummarySink(w, opts.Patterns, opts.Pretty), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// SliceSink collects records in memory.
type SliceSink struct {
	records []Record
}

// Put appends rec.
func (s *SliceSink) Put(rec Record) error {
	s.records = append(s.records, rec)
	return nil
}

// Flush is a no-op.
func (s *SliceSink) Flush() error {
	return nil
}

// Records returns collected records.
func (s *SliceSink) Records() []Record {
	return s.records
}

// NDJSONSink writes one JSON object per line.
type NDJSONSink struct {
	w   *bufio.Writer
	enc *json.Encoder
}

// NewNDJSONSink creates a newline-delimited JSON sink.
func NewNDJSONSink(w io.Writer) *NDJSONSink {
	bw := bufio.NewWriterSize(w, defaultSinkBufSize)
	return &NDJSONSink{w: bw, enc: newRecordEncoder(bw)}
}

// Put writes rec as one line.
func (s *NDJSONSink) Put(rec Record) error {
	if err := s.enc.Encode(rec); err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	return nil
}

// Flush flushes buffered lines.
func (s *NDJSONSink) Flush() error {
	return s.w.Flush()
}

// JSONArraySink writes all records as one JSON array.
type JSONArraySink struct {
	w      *bufio.Writer
	enc    *json.Encoder
	buf    bytes.Buffer
	count  int
	pretty bool
	closed bool
}

// NewJSONArraySink creates a JSON array sink, optionally indented.
func NewJSONArraySink(w io.Writer, indent bool) *JSONArraySink {
	s := &JSONArraySink{
		w:      bufio.NewWriterSize(w, defaultSinkBufSize),
		pretty: indent,
	}
	s.enc = newRecordEncoder(&s.buf)
	return s
}

// Put writes rec as the next array element.
func (s *JSONArraySink) Put(rec Record) error {
	if s.closed {
		return errSinkClosed
	}

	s.buf.Reset()
	if err := s.enc.Encode(rec); err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	elem := bytes.TrimRight(s.buf.Bytes(), "\n")
	if s.pretty {
		elem = bytes.TrimRight(pretty.PrettyOptions(elem, prettyElement), "\n")
	}

	sep := ","
	if s.count == 0 {
		sep = "["
	}
	if s.pretty {
		sep += "\n"
	}

	s.count++
	if _, err := s.w.WriteString(sep); err != nil {
		return err
	}

	_, err := s.w.Write(elem)
	return err
}

// Flush closes the array and flushes buffered output.
func (s *JSONArraySink) Flush() error {
	if !s.closed {
		s.closed = true

		tail := "]\n"
		switch {
		case s.count == 0:
			tail = "[]\n"
		case s.pretty:
			tail = "\n]\n"
		}

		if _, err := s.w.WriteString(tail); err != nil {
			return err
		}
	}

	return s.w.Flush()
}

// SummarySink counts hits per pattern and writes one summary document on Flush.
type SummarySink struct {
	w          io.Writer
	patterns   []Pattern
	hits       []int
	candidates int
	matched    int
	pretty     bool
	closed     bool
}

// patternHits is one per-pattern entry of the summary document.
type patternHits struct {
	Glob  string `json:"glob"`
	Index int    `json:"index"`
	Hits  int    `json:"hits"`
}

// NewSummarySink creates a summary sink for the given compiled patterns.
func NewSummarySink(w io.Writer, patterns []Pattern, indent bool) *SummarySink {
	return &SummarySink{
		w:        w,
		patterns: patterns,
		hits:     make([]int, len(patterns)),
		pretty:   indent,
	}
}

// Put tallies rec.
func (s *SummarySink) Put(rec Record) error {
	if s.closed {
		return errSinkClosed
	}

	s.candidates++
	if rec.IsMatch {
		s.matched++
	}

	for _, idx := range rec.Matches {
		if idx >= 0 && idx < len(s.hits) {
			s.hits[idx]++
		}
	}

	return nil
}

// Flush writes the summary document once.
func (s *SummarySink) Flush() error {
	if s.closed {
		return nil
	}
	s.closed = true

	doc, err := s.document()
	if err != nil {
		return fmt.Errorf("build summary: %w", err)
	}

	_, err = s.w.Write(doc)
	return err
}

// document renders counters as JSON.
func (s *SummarySink) document() ([]byte, error) {
	doc := []byte(`{}`)

	var err error
	set := func(path string, value interface{}) {
		if err != nil {
			return
		}

		doc, err = sjson.SetBytes(doc, path, value)
	}

	set("candidates", s.candidates)
	set("matched", s.matched)
	set("unmatched", s.candidates-s.matched)
	if err == nil {
		doc, err = sjson.SetRawBytes(doc, "patterns", []byte(`[]`))
	}

	for i, p := range s.patterns {
		set("patterns.-1", patternHits{Index: p.Index, Glob: p.Glob, Hits: s.hits[i]})
	}

	if err != nil {
		return nil, err
	}

	if s.pretty {
		return pretty.PrettyOptions(doc, prettyDocument), nil
	}

	return append(doc, '\n'), nil
}

// newRecordEncoder returns a JSON encoder that keeps subjects readable.
func newRecordEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc
}
