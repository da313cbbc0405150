package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type Store struct {
	Version int               `json:"version"`
	Records map[string]string `json:"records"`
}

type JSONStore struct {
	path  string
	store *Store
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

	s.store = &Store{
		Version: 1,
		Records: make(map[string]string),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'habitkit init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure map is initialized
	if s.store.Records == nil {
		s.store.Records = make(map[string]string)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Get(key string) (string, bool, error) {
	if s.store == nil {
		return "", false, fmt.Errorf("storage not loaded")
	}

	value, ok := s.store.Records[key]
	return value, ok, nil
}

func (s *JSONStore) Set(key, value string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Records[key] = value
	return s.save()
}

func (s *JSONStore) Remove(key string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	delete(s.store.Records, key)
	return s.save()
}

func (s *JSONStore) RemoveAll(keys ...string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	for _, key := range keys {
		delete(s.store.Records, key)
	}
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
