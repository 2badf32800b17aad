// SPDX-License-Identifier: MIT
// Copyright (c) 2026 crab21
// Source: github.com/crab21/globset

package globset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// errFileFinished is returned by writes after Commit or Abort.
var errFileFinished = errors.New("atomic file already committed or aborted")

// AtomicFile writes to a temporary file next to its destination and
// replaces the destination only on Commit.
type AtomicFile struct {
	f    *os.File
	tmp  string
	dest string
}

// CreateAtomicFile starts an atomic write of dest. Zero perm means 0o644.
// Missing parent directories are created.
func CreateAtomicFile(dest string, perm os.FileMode) (*AtomicFile, error) {
	if strings.TrimSpace(dest) == "" {
		return nil, fmt.Errorf("create output: %w", os.ErrInvalid)
	}

	if perm == 0 {
		perm = 0o644
	}

	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", dir, err)
	}

	tmp := filepath.Join(dir, "."+filepath.Base(dest)+"."+uuid.NewString()+".tmp")
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, perm)
	if err != nil {
		return nil, fmt.Errorf("create output %s: %w", dest, err)
	}

	return &AtomicFile{f: f, tmp: tmp, dest: dest}, nil
}

// Write writes to the temporary file.
func (a *AtomicFile) Write(p []byte) (int, error) {
	if a.f == nil {
		return 0, errFileFinished
	}

	return a.f.Write(p)
}

// Path returns the destination path.
func (a *AtomicFile) Path() string {
	return a.dest
}

// Commit syncs the temporary file and renames it over the destination.
func (a *AtomicFile) Commit() error {
	if a.f == nil {
		return errFileFinished
	}

	f := a.f
	a.f = nil

	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(a.tmp)
		return fmt.Errorf("sync output %s: %w", a.dest, err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(a.tmp)
		return fmt.Errorf("close output %s: %w", a.dest, err)
	}

	if err := os.Rename(a.tmp, a.dest); err != nil {
		_ = os.Remove(a.tmp)
		return fmt.Errorf("replace output %s: %w", a.dest, err)
	}

	return nil
}

// Abort discards the temporary file. Abort after Commit is a no-op.
func (a *AtomicFile) Abort() error {
	if a.f == nil {
		return nil
	}

	f := a.f
	a.f = nil
	_ = f.Close()

	if err := os.Remove(a.tmp); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove temp output %s: %w", a.tmp, err)
	}

	return nil
}

// TempOutputPath returns a unique artifact path in dir for the given extension.
// Empty dir means os.TempDir().
func TempOutputPath(dir string, ext string) string {
	if dir == "" {
		dir = os.TempDir()
	}

	ext = strings.TrimPrefix(ext, ".")
	name := "globset-" + uuid.NewString()
	if ext != "" {
		name += "." + ext
	}

	return filepath.Join(dir, name)
}

// FormatExtension returns the conventional file extension of an output format.
func FormatExtension(format string) string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON, FormatSummary:
		return "json"
	default:
		return "ndjson"
	}
}
