// Package state persists the last run's summary in a flat JSON file.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.ledgerline.dev/preflight/internal/core/domain"
	"go.ledgerline.dev/preflight/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.RunRecordStore using a flat JSON file.
type Store struct {
	path   string
	logger ports.Logger
	mu     sync.RWMutex
	last   *domain.RunRecord
}

// NewStore creates a new RunRecordStore backed by the file at the given path.
func NewStore(path string, logger ports.Logger) (*Store, error) {
	s := &Store{
		path:   filepath.Clean(path),
		logger: logger,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read run record store")
	}

	if len(data) == 0 {
		return nil
	}

	var record domain.RunRecord
	if err := json.Unmarshal(data, &record); err != nil {
		// The record is advisory: a file someone mangled by hand must not
		// keep the tool from running. Start empty; the next Put rewrites it.
		s.logger.Warn("discarding unreadable run record store: " + err.Error())
		return nil
	}
	s.last = &record

	return nil
}

// Last returns the previous run's record, or nil if there is none.
func (s *Store) Last() (*domain.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.last == nil {
		return nil, nil
	}
	record := *s.last
	return &record, nil
}

// Put stores the record as the latest run and writes it to disk.
func (s *Store) Put(record domain.RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last = &record

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal run record")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for run record store")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write run record store")
	}

	return nil
}
