// SPDX-License-Identifier: MIT
// Copyright (c) 2026 crab21
// Source: github.com/crab21/globset

// Command globset classifies the lines of a file against glob patterns and
// writes one JSON record per line.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/crab21/globset"
	"github.com/crab21/globset/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

// Exit codes.
const (
	exitOK      = 0
	exitRuntime = 1
	exitUsage   = 2
	exitPattern = 3
)

// tempOutput as -o value writes to a uniquely named file in the temp dir.
const tempOutput = "@temp"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// boolFlag records whether a boolean flag was given explicitly.
type boolFlag struct {
	val *bool
}

func (b *boolFlag) String() string {
	if b.val == nil {
		return "false"
	}

	return fmt.Sprint(*b.val)
}

func (b *boolFlag) Set(v string) error {
	parsed, err := parseBoolFlag(v)
	if err != nil {
		return err
	}

	b.val = &parsed
	return nil
}

func (b *boolFlag) IsBoolFlag() bool { return true }

func parseBoolFlag(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "1", "t", "true", "yes":
		return true, nil
	case "0", "f", "false", "no":
		return false, nil
	}

	return false, fmt.Errorf("invalid boolean %q", v)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	start := time.Now()

	fs := flag.NewFlagSet("globset", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		flagConfig   string
		flagInput    string
		flagOutput   string
		flagFormat   string
		flagEncoding string
		flagInvalid  string
		flagLogLevel string
		flagJSON     string
		flagQuery    string
		flagMax      int
		flagVersion  bool
		flagFiles    stringList
		flagExts     stringList
		flagCase     boolFlag
		flagClean    boolFlag
		flagPretty   boolFlag
	)
	fs.StringVar(&flagConfig, "config", "", "TOML or YAML (.yaml, .yml) configuration file (default $GLOBSET_CONFIG)")
	fs.StringVar(&flagInput, "input", "", `candidates file, "-" for stdin`)
	fs.StringVar(&flagOutput, "o", "", `output file (atomic replace), "`+tempOutput+`" for a generated temp file; stdout when empty`)
	fs.StringVar(&flagFormat, "format", "", "output format: ndjson, json, summary")
	fs.StringVar(&flagEncoding, "encoding", "", "candidates encoding label (default utf-8)")
	fs.StringVar(&flagInvalid, "invalid", "", "invalid UTF-8 lines: empty or replace")
	fs.StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&flagJSON, "patterns-json", "", "JSON document with a pattern array")
	fs.StringVar(&flagQuery, "patterns-query", "", "gjson path of the pattern array in -patterns-json")
	fs.IntVar(&flagMax, "max-patterns", 0, "maximum number of patterns (0 = unlimited)")
	fs.BoolVar(&flagVersion, "version", false, "print version and exit")
	fs.Var(&flagFiles, "f", "pattern file, one glob per line (repeatable)")
	fs.Var(&flagExts, "ext", "extension to match as *.ext (repeatable)")
	fs.Var(&flagCase, "i", "ASCII case-insensitive matching")
	fs.Var(&flagClean, "clean", "match candidates as cleaned slash paths")
	fs.Var(&flagPretty, "pretty", "indent json and summary output")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: globset [flags] [PATTERN...]\n\n")
		fmt.Fprintf(stderr, "Classifies every line of -input against the patterns and writes\n")
		fmt.Fprintf(stderr, "{\"matches\":[...],\"is_match\":bool,\"subject\":\"...\"} records.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitUsage
	}

	if flagVersion {
		fmt.Fprintf(stdout, "globset %s (%s)\n", version, commit)
		return exitOK
	}

	cfg := config.Defaults()

	if flagConfig == "" {
		flagConfig = os.Getenv("GLOBSET_CONFIG")
	}
	if flagConfig != "" {
		fileCfg, err := config.LoadFile(flagConfig)
		if err != nil {
			fmt.Fprintf(stderr, "globset: %v\n", err)
			return exitUsage
		}
		cfg = config.Merge(cfg, fileCfg)
	}

	envCfg, err := config.EnvOverlay(os.Environ())
	if err != nil {
		fmt.Fprintf(stderr, "globset: environment: %v\n", err)
		return exitUsage
	}
	cfg = config.Merge(cfg, envCfg)

	cfg = config.Merge(cfg, config.Config{
		Patterns:         fs.Args(),
		PatternFiles:     flagFiles,
		PatternJSON:      flagJSON,
		PatternJSONQuery: flagQuery,
		Extensions:       flagExts,
		Input:            flagInput,
		Encoding:         flagEncoding,
		InvalidLines:     flagInvalid,
		Output:           flagOutput,
		Format:           flagFormat,
		Pretty:           flagPretty.val,
		CaseInsensitive:  flagCase.val,
		CleanPaths:       flagClean.val,
		MaxPatterns:      flagMax,
		LogLevel:         flagLogLevel,
	})

	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(stderr, "globset: %v\n", err)
		return exitUsage
	}

	logger := newLogger(stderr, cfg.LogLevel)
	return execute(cfg, stdin, stdout, logger, start)
}

// execute compiles patterns, classifies input and writes output.
func execute(cfg config.Config, stdin io.Reader, stdout io.Writer, logger *slog.Logger, start time.Time) int {
	patterns, err := collectPatterns(cfg)
	if err != nil {
		logger.Error("load patterns failed", "stage", "error", "err", err)
		return exitRuntime
	}

	m, err := globset.Compile(patterns, globset.MatcherOptions{
		CaseInsensitive: config.Bool(cfg.CaseInsensitive),
		CleanPaths:      config.Bool(cfg.CleanPaths),
		MaxPatterns:     cfg.MaxPatterns,
	})
	if err != nil {
		var perr *globset.PatternError
		if errors.As(err, &perr) {
			logger.Error("compile failed", "stage", "error", "index", perr.Index, "pattern", perr.Pattern, "reason", perr.Reason)
		} else {
			logger.Error("compile failed", "stage", "error", "err", err)
		}

		return exitPattern
	}
	logger.Debug("compiled patterns", "stage", "start", "count", m.Len())

	policy, err := globset.ParseInvalidPolicy(cfg.InvalidLines)
	if err != nil {
		logger.Error("invalid line policy", "stage", "error", "err", err)
		return exitUsage
	}

	srcOpts := globset.SourceOptions{
		Encoding: cfg.Encoding,
		Invalid:  policy,
		OnInvalid: func(line int) {
			logger.Warn("candidate line is not valid utf-8", "line", line, "policy", cfg.InvalidLines)
		},
	}

	src, err := openSource(cfg.Input, stdin, srcOpts)
	if err != nil {
		logger.Error("open input failed", "stage", "error", "err", err)
		return exitRuntime
	}
	defer func() { _ = src.Close() }()

	dest := cfg.Output
	if dest == tempOutput {
		dest = globset.TempOutputPath("", globset.FormatExtension(cfg.Format))
	}

	var (
		w    io.Writer = stdout
		file *globset.AtomicFile
	)
	if dest != "" {
		file, err = globset.CreateAtomicFile(dest, 0)
		if err != nil {
			logger.Error("create output failed", "stage", "error", "err", err)
			return exitRuntime
		}
		defer func() { _ = file.Abort() }()
		w = file
	}

	sink, err := globset.NewSink(cfg.Format, w, globset.SinkOptions{
		Patterns: m.Patterns(),
		Pretty:   config.Bool(cfg.Pretty),
	})
	if err != nil {
		logger.Error("create sink failed", "stage", "error", "err", err)
		return exitUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats, err := globset.Run(ctx, m, src.All(), sink)
	if err == nil {
		err = src.Err()
	}
	if err != nil {
		logger.Error("classification failed", "stage", "error", "count", stats.Candidates, "err", err)
		return exitRuntime
	}

	if file != nil {
		if err := file.Commit(); err != nil {
			logger.Error("commit output failed", "stage", "error", "err", err)
			return exitRuntime
		}

		if cfg.Output == tempOutput {
			fmt.Fprintln(stdout, dest)
		}
	}

	logger.Info("classified candidates",
		"stage", "finish",
		"count", stats.Candidates,
		"matched", stats.Matched,
		"degraded", src.Degraded(),
		"patterns", m.Len(),
		"dur_ms", time.Since(start).Milliseconds(),
	)

	return exitOK
}

// collectPatterns assembles patterns in a fixed order: inline patterns,
// pattern files, JSON document, extensions.
func collectPatterns(cfg config.Config) ([]string, error) {
	fromFiles, err := globset.LoadPatternsFiles(cfg.PatternFiles...)
	if err != nil {
		return nil, err
	}

	var fromJSON []string
	if cfg.PatternJSON != "" {
		fromJSON, err = globset.LoadPatternsJSON(cfg.PatternJSON, cfg.PatternJSONQuery)
		if err != nil {
			return nil, err
		}
	}

	return globset.MergePatterns(
		cfg.Patterns,
		fromFiles,
		fromJSON,
		globset.ParseExtensions(cfg.Extensions),
	), nil
}

// openSource opens input, "-" reads stdin.
func openSource(input string, stdin io.Reader, opts globset.SourceOptions) (*globset.LineSource, error) {
	if input == "-" {
		return globset.NewLineSource(stdin, opts)
	}

	return globset.OpenLineSource(input, opts)
}

// newLogger returns a JSON line logger on w.
func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})).With("comp", "globset")
}
