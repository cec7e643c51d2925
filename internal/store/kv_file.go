package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rpassos/autoescola/internal/logger"
)

// fileKVStore is the JSON-file-backed implementation of [KVStore]. The whole
// key space is loaded into memory at open time and the full file is rewritten
// on every Set/Delete, matching the replace-on-save semantics of the legacy
// data format.
//
// A missing or unparseable file is treated as an empty key space, never as an
// error. An empty path (or ":memory:") selects a purely in-memory store that
// skips persistence, which is convenient for tests.
type fileKVStore struct {
	path     string
	inMemory bool

	mu     sync.RWMutex
	values map[string]string
}

// NewFileKVStore opens (or initializes) the JSON file store at path.
func NewFileKVStore(path string, log *logger.Logger) (KVStore, error) {
	inMemory := path == "" || path == ":memory:"
	s := &fileKVStore{
		path:     path,
		inMemory: inMemory,
		values:   make(map[string]string),
	}

	if err := s.load(log); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *fileKVStore) load(log *logger.Logger) error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read storage file: %w", err)
	}

	var values map[string]string
	if err = json.Unmarshal(data, &values); err != nil {
		// corrupt content is treated as empty
		log.Warn().Err(err).Str("path", s.path).Msg("storage file is corrupt, starting empty")
		return nil
	}

	if values != nil {
		s.values = values
	}

	return nil
}

func (s *fileKVStore) persist() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode storage: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write storage file: %w", err)
	}

	return nil
}

func (s *fileKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok, nil
}

func (s *fileKVStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return s.persist()
}

func (s *fileKVStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return s.persist()
}

func (s *fileKVStore) Close() error {
	return nil
}
