package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/Tiliavir/hours/internal/codec"
	"github.com/Tiliavir/hours/internal/model"
)

var (
	ErrReadFailed  = errors.New("storage: read failed")
	ErrWriteFailed = errors.New("storage: write failed")
	ErrFlushFailed = errors.New("storage: could not save data to file")
)

// Store owns the dataset loaded from a single data file. All access goes
// through Read and Write; changes reach the disk only on Flush.
type Store struct {
	path   string
	logger *slog.Logger

	mu       sync.RWMutex
	data     *model.Dataset
	dirty    bool
	flushErr error
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// Open binds a Store to path. A missing file yields an empty dataset that
// exists only in memory until the first Flush. A file that cannot be read or
// decoded is an error; it is never replaced by an empty dataset.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{
		path:   path,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.logger.Debug("data file not found, starting empty", "path", path)
		s.data = model.NewDataset()
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrReadFailed, path, err)
	}

	ds, err := codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	s.data = ds
	s.logger.Debug("data file loaded", "path", path,
		"projects", len(ds.Projects), "entries", len(ds.Billable))
	return s, nil
}

// Path returns the data file the store is bound to.
func (s *Store) Path() string {
	return s.path
}

// Read runs fn against the current dataset under a shared lock. fn must not
// modify the dataset.
func (s *Store) Read(fn func(d *model.Dataset) error) (err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrReadFailed, r)
		}
	}()
	return fn(s.data)
}

// Write runs fn against a copy of the dataset under an exclusive lock. The
// copy replaces the current dataset only when fn returns nil; on error or
// panic the previous state is kept and the error wraps ErrWriteFailed.
func (s *Store) Write(fn func(d *model.Dataset) error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrWriteFailed, r)
		}
	}()

	next := s.data.Clone()
	if err := fn(next); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	s.data = next
	s.dirty = true
	return nil
}

// Dirty reports whether there are in-memory changes not yet flushed.
func (s *Store) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}

// LastFlushErr returns the error of the most recent failed Flush, or nil if
// the most recent Flush succeeded.
func (s *Store) LastFlushErr() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flushErr
}

// Flush encodes the dataset and atomically replaces the data file with it.
// It is safe to call with nothing pending.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.save()
	s.flushErr = err
	if err != nil {
		return err
	}
	s.dirty = false
	s.logger.Debug("data file saved", "path", s.path, "entries", len(s.data.Billable))
	return nil
}

func (s *Store) save() error {
	data, err := codec.Encode(s.data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFlushFailed, err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("%w: creating directories: %v", ErrFlushFailed, err)
	}

	// Atomic write: write to temp file then rename.
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("%w: writing temp file: %v", ErrFlushFailed, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: renaming temp file: %v", ErrFlushFailed, err)
	}
	return nil
}
