// Package procstore persists processed per-repository records as one JSON
// file per repository. The store follows a full-rebuild contract: every
// processing run wipes the output directory and repopulates it, so stale
// records from prior runs can never leak through.
package procstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gitpulse/gitpulse/schema"
)

// Store writes and reads processed records under one output directory.
type Store struct {
	dir string
}

// NewStore creates a store for the given processed-output directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the processed-output directory.
func (s *Store) Dir() string {
	return s.dir
}

// Rebuild clears the output directory and recreates it empty.
func (s *Store) Rebuild() error {
	if err := os.RemoveAll(s.dir); err != nil {
		return fmt.Errorf("clear processed dir %s: %w", s.dir, err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create processed dir %s: %w", s.dir, err)
	}
	return nil
}

// Write persists one processed record, deriving the filename from the
// repository identifier.
func (s *Store) Write(record *schema.ProcessedRepo) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode processed record for %s: %w", record.Repo, err)
	}
	path := filepath.Join(s.dir, schema.RepoFileName(record.Repo))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write processed record %s: %w", path, err)
	}
	return nil
}

// WriteAll rebuilds the directory and persists every record.
func (s *Store) WriteAll(records []schema.ProcessedRepo) error {
	if err := s.Rebuild(); err != nil {
		return err
	}
	for i := range records {
		if err := s.Write(&records[i]); err != nil {
			return err
		}
	}
	return nil
}

// Load reads one processed record by repository identifier.
func (s *Store) Load(repo string) (*schema.ProcessedRepo, error) {
	path := filepath.Join(s.dir, schema.RepoFileName(repo))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read processed record %s: %w", path, err)
	}
	var record schema.ProcessedRepo
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decode processed record %s: %w", path, err)
	}
	return &record, nil
}

// LoadAll reads every processed record in the directory, sorted by filename.
func (s *Store) LoadAll() ([]schema.ProcessedRepo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list processed dir %s: %w", s.dir, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	records := make([]schema.ProcessedRepo, 0, len(names))
	for _, name := range names {
		path := filepath.Join(s.dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read processed record %s: %w", path, err)
		}
		var record schema.ProcessedRepo
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, fmt.Errorf("decode processed record %s: %w", path, err)
		}
		records = append(records, record)
	}
	return records, nil
}
