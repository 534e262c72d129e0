// Package store persists completed tarot readings as a single JSON collection
// kept under one key of a local key-value store.
//
// The exported List, Save, Delete and GetByID never fail: persistence is best
// effort and failures are logged and swallowed. The checked variants expose
// the underlying result for callers that want to report it.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/arcanaland/mysticguide/internal/card"
)

// ReadingsKey is the fixed key the reading collection is stored under
const ReadingsKey = "mysticGuideReadings"

var (
	// ErrStorageUnavailable means the backing store could not be read or written
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrSerialization means the collection could not be encoded or decoded
	ErrSerialization = errors.New("serialization error")
)

// Reading is the persisted record of one completed spread
type Reading struct {
	ID                string        `json:"id"`
	SpreadName        string        `json:"spreadName"`
	SpreadDescription string        `json:"spreadDescription"`
	CardsInReading    []card.Placed `json:"cardsInReading"`
	Interpretation    string        `json:"interpretation"`
	Date              string        `json:"date"` // RFC 3339
}

// Store keeps the reading collection, most recently saved first
type Store struct {
	mu     sync.Mutex
	kv     KV
	key    string
	logger *zap.Logger
}

// New returns a store over kv. A nil kv behaves as unavailable storage.
func New(kv KV, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{kv: kv, key: ReadingsKey, logger: logger}
}

// Open builds a store for the named backend ("file" or "sqlite") under dataDir.
// The returned closer releases the backend.
func Open(backend, dataDir string, logger *zap.Logger) (*Store, io.Closer, error) {
	switch backend {
	case "", "file":
		kv, err := NewFileKV(dataDir)
		if err != nil {
			return nil, nil, err
		}
		return New(kv, logger), nopCloser{}, nil
	case "sqlite":
		kv, err := OpenSQLiteKV(filepath.Join(dataDir, "readings.db"))
		if err != nil {
			return nil, nil, err
		}
		return New(kv, logger), kv, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// load reads and decodes the whole collection
func (s *Store) load() ([]Reading, error) {
	if s.kv == nil {
		return nil, ErrStorageUnavailable
	}
	data, ok, err := s.kv.Get(s.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if !ok || len(data) == 0 {
		return []Reading{}, nil
	}

	var readings []Reading
	if err := json.Unmarshal(data, &readings); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	if readings == nil {
		readings = []Reading{}
	}
	return readings, nil
}

// persist encodes and writes the whole collection
func (s *Store) persist(readings []Reading) error {
	if s.kv == nil {
		return ErrStorageUnavailable
	}
	data, err := json.Marshal(readings)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	if err := s.kv.Set(s.key, data); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

// List returns all stored readings, most recent first.
// It returns an empty slice if storage is unavailable or unreadable.
func (s *Store) List() []Reading {
	s.mu.Lock()
	defer s.mu.Unlock()

	readings, err := s.load()
	if err != nil {
		s.logger.Error("retrieving readings", zap.String("key", s.key), zap.Error(err))
		return []Reading{}
	}
	return readings
}

// Save prepends r to the collection. Failures are logged, not returned.
func (s *Store) Save(r Reading) {
	if err := s.SaveChecked(r); err != nil {
		s.logger.Error("saving reading", zap.String("key", s.key), zap.String("id", r.ID), zap.Error(err))
	}
}

// SaveChecked prepends r to the collection and reports the outcome.
// An undecodable existing collection is treated as empty and overwritten.
func (s *Store) SaveChecked(r Reading) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.load()
	if errors.Is(err, ErrSerialization) {
		s.logger.Warn("discarding unreadable reading collection", zap.String("key", s.key), zap.Error(err))
		existing = []Reading{}
	} else if err != nil {
		return err
	}

	updated := make([]Reading, 0, len(existing)+1)
	updated = append(updated, r)
	updated = append(updated, existing...)
	return s.persist(updated)
}

// Delete removes the reading with the given id. A missing id is a no-op.
func (s *Store) Delete(id string) {
	if err := s.DeleteChecked(id); err != nil {
		s.logger.Error("deleting reading", zap.String("key", s.key), zap.String("id", id), zap.Error(err))
	}
}

// DeleteChecked removes the reading with the given id and reports the outcome
func (s *Store) DeleteChecked(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.load()
	if errors.Is(err, ErrSerialization) {
		existing = []Reading{}
	} else if err != nil {
		return err
	}

	updated := existing[:0:0]
	for _, r := range existing {
		if r.ID != id {
			updated = append(updated, r)
		}
	}
	return s.persist(updated)
}

// GetByID returns the stored reading with the given id
func (s *Store) GetByID(id string) (Reading, bool) {
	for _, r := range s.List() {
		if r.ID == id {
			return r, true
		}
	}
	return Reading{}, false
}
