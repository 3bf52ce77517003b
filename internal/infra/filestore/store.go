// Package filestore provides a flat text file implementation of domain.TaskStore.
//
// The file holds one task per line in the codec format. It is read whole and
// overwritten whole through a temp file renamed over the target. There is no locking.
package filestore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/duke/internal/codec"
	"github.com/runoshun/duke/internal/domain"
)

// Ensure Store implements domain.TaskStore.
var _ domain.TaskStore = (*Store)(nil)

// Store implements domain.TaskStore using a text file.
type Store struct {
	codec *codec.Codec
	path  string
}

// New creates a Store for the given file path.
// The file does not need to exist; it will be created on first save.
func New(path string, c *codec.Codec) *Store {
	return &Store{path: path, codec: c}
}

// Path returns the file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads every task from the file.
// A missing file yields an empty list.
func (s *Store) Load() ([]domain.Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.Task{}, nil
		}
		return nil, fmt.Errorf("read tasks file: %w", err)
	}

	tasks, err := s.codec.DecodeAll(string(data))
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

// Save overwrites the file with tasks, creating parent directories as needed.
func (s *Store) Save(tasks []domain.Task) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}

	if err := writeAtomic(s.path, []byte(s.codec.EncodeAll(tasks)), 0o600); err != nil {
		return fmt.Errorf("write tasks file: %w", err)
	}
	return nil
}

func writeAtomic(path string, content []byte, perm os.FileMode) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, perm); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
