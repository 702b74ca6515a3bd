package store

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// JSONStore keeps every blob in a single JSON document on disk. Writes go
// through a temp file and rename so a crash never leaves a half-written file.
type JSONStore struct {
	filePath string
	mu       sync.RWMutex
	blobs    map[string]json.RawMessage
}

// NewJSONStore opens the document at filePath. A missing file is an empty
// store; an unreadable document is logged and treated as a first run.
func NewJSONStore(filePath string) (*JSONStore, error) {
	s := &JSONStore{
		filePath: filePath,
		blobs:    make(map[string]json.RawMessage),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *JSONStore) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.blobs[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

func (s *JSONStore) Set(key string, value []byte) error {
	if !json.Valid(value) {
		return errors.New("value for " + key + " is not valid JSON")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = append(json.RawMessage(nil), value...)
	return s.persistLocked()
}

func (s *JSONStore) Remove(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.blobs, key)
	}
	return s.persistLocked()
}

func (s *JSONStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	var blobs map[string]json.RawMessage
	if err := json.Unmarshal(data, &blobs); err != nil {
		log.Printf("Error loading %s: %v. Starting fresh.", s.filePath, err)
		return nil
	}
	if blobs != nil {
		s.blobs = blobs
	}
	return nil
}

func (s *JSONStore) persistLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.blobs, "", "  ")
	if err != nil {
		return err
	}

	tmpPath := s.filePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpPath, s.filePath)
}
