package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"until/internal/constants"
)

type jsonEnvelope struct {
	Version int               `json:"version"`
	Values  map[string]string `json:"values"`
}

type JSONStore struct {
	path  string
	store *jsonEnvelope
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &jsonEnvelope{
		Version: 1,
		Values:  make(map[string]string),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'until init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &jsonEnvelope{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.store.Values == nil {
		s.store.Values = make(map[string]string)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// save writes through a temp file plus atomic rename so a failed write
// never truncates the previous state.
func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tempPath := s.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	if err := os.Rename(tempPath, s.path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Get(key string) (string, bool, error) {
	if s.store == nil {
		return "", false, fmt.Errorf("storage not loaded")
	}

	value, ok := s.store.Values[key]
	return value, ok, nil
}

func (s *JSONStore) Set(key, value string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	if len(value) > constants.MaxValueBytes {
		return fmt.Errorf("key %q: %w", key, ErrValueTooLarge)
	}

	s.store.Values[key] = value
	return s.save()
}

func (s *JSONStore) Delete(key string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	delete(s.store.Values, key)
	return s.save()
}

func (s *JSONStore) Keys() ([]string, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	keys := make([]string, 0, len(s.store.Values))
	for k := range s.store.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
