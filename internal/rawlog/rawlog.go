// Package rawlog reads and appends the raw snapshot log: a newline-delimited
// JSON stream with one snapshot per repository per poll. The log is
// append-only; appended snapshots are never rewritten.
package rawlog

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gitpulse/gitpulse/schema"
)

// Sentinel errors for raw log input faults. Both are configuration/input
// errors surfaced before any per-repository processing begins.
var (
	ErrMissing = errors.New("raw log is missing")
	ErrEmpty   = errors.New("raw log contains no crawl data")
)

// maxLineBytes bounds a single raw log line. A snapshot with two full daily
// windows stays well under this.
const maxLineBytes = 1 << 20

// Store provides read and append access to one raw log file.
type Store struct {
	path string
}

// NewStore creates a store for the given raw log path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the raw log path.
func (s *Store) Path() string {
	return s.path
}

// ReadAll reads every snapshot in the log, in append order. A missing file
// and an empty log are distinct fatal errors.
func (s *Store) ReadAll() ([]schema.Snapshot, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissing, s.path)
		}
		return nil, fmt.Errorf("open raw log %s: %w", s.path, err)
	}
	defer func() { _ = f.Close() }()

	var snaps []schema.Snapshot
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var snap schema.Snapshot
		if err := json.Unmarshal(scanner.Bytes(), &snap); err != nil {
			return nil, fmt.Errorf("raw log %s line %d: %w", s.path, line, err)
		}
		snaps = append(snaps, snap)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read raw log %s: %w", s.path, err)
	}

	if len(snaps) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, s.path)
	}
	return snaps, nil
}

// Append serializes each snapshot as one JSON line and appends it to the
// log, creating the parent directory if needed.
func (s *Store) Append(snaps ...schema.Snapshot) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create raw log dir %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open raw log %s for append: %w", s.path, err)
	}
	defer func() { _ = f.Close() }()

	w := bufio.NewWriter(f)
	for _, snap := range snaps {
		data, err := json.Marshal(snap)
		if err != nil {
			return fmt.Errorf("encode snapshot for %s: %w", snap.Repo, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("append to raw log %s: %w", s.path, err)
		}
	}
	return w.Flush()
}
