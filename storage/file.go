package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

// FileAdapter mirrors all keys into a single JSON document on disk. Every
// Save rewrites the whole document; record volume is bounded by realistic
// usage, so the full rewrite stays cheap.
type FileAdapter struct {
	mu   sync.Mutex
	path string
}

func NewFileAdapter(path string) *FileAdapter {
	return &FileAdapter{path: path}
}

func (a *FileAdapter) Load(key string) (string, bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	values, err := a.read()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

func (a *FileAdapter) Save(key, value string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	values, err := a.read()
	if err != nil {
		return err
	}
	values[key] = value
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}
	if err := os.WriteFile(a.path, data, 0o644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	return nil
}

// read loads the backing document. A missing or undecodable document is an
// empty store: every key reads as absent and the next Save starts the
// document over.
func (a *FileAdapter) read() (map[string]string, error) {
	data, err := os.ReadFile(a.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}
	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return map[string]string{}, nil
	}
	return values, nil
}
