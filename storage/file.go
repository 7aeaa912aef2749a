package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Dir is a Backend storing each slot in a file of the directory.
//
// The directory is created on the first write.
type Dir string

func (d Dir) path(key string) string { return filepath.Join(string(d), key+".json") }

// Get reads the slot file.
func (d Dir) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(d.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, notExist(key)
	}
	return data, err
}

// Put writes value to a temporary file then renames it over the slot file.
func (d Dir) Put(key string, value []byte) error {
	if err := os.MkdirAll(string(d), 0o755); err != nil {
		return fmt.Errorf("cannot create storage directory: %w", err)
	}
	tmp, err := os.CreateTemp(string(d), key+".*.tmp")
	if err != nil {
		return fmt.Errorf("cannot write slot %q: %w", key, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write slot %q: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write slot %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write slot %q: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), d.path(key)); err != nil {
		return fmt.Errorf("cannot write slot %q: %w", key, err)
	}
	return nil
}
