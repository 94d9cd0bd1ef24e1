package resalehub

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Storage keys: each key names one independent persisted document inside the
// storage directory.
const (
	StorageKey  = "resale-hub-storage"
	SettingsKey = "resale-hub-settings"
)

func documentPath(dir, key string) string {
	return filepath.Join(dir, key+".json")
}

// LoadStore reads the store document from the storage directory. A missing
// document yields an empty store, never an error.
func LoadStore(dir string) (*Store, error) {
	f, err := os.Open(documentPath(dir, StorageKey))
	if errors.Is(err, fs.ErrNotExist) {
		return NewStore(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open store document: %w", err)
	}
	defer f.Close()
	return DecodeStore(f)
}

// SaveStore writes the full store state back to the storage directory,
// creating it if needed. Callers save after every mutation.
func SaveStore(dir string, s *Store) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create storage directory %q: %w", dir, err)
	}
	f, err := os.Create(documentPath(dir, StorageKey))
	if err != nil {
		return fmt.Errorf("could not open store document for writing: %w", err)
	}
	defer f.Close()
	return EncodeStore(f, s)
}
