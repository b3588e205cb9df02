package records

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"account-list/core/reconcile"
)

// FileStore keeps each collection in a CSV file under a directory.
type FileStore struct {
	dir       string
	extension string
}

// NewFileStore creates a store rooted at cfg.Dir.
func NewFileStore(cfg Config) *FileStore {
	return &FileStore{dir: cfg.Dir, extension: cfg.Extension}
}

// Path returns the file that holds the named collection.
func (s *FileStore) Path(collection string) string {
	return filepath.Join(s.dir, collection+s.extension)
}

// Load reads the named collection.
func (s *FileStore) Load(ctx context.Context, collection string) ([]reconcile.Record, error) {
	if err := validateCollection(collection); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path(collection))
	if err != nil {
		return nil, fmt.Errorf("failed to open records: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Save rewrites the named collection.
//
// Records are written to a temp file in the same directory which is then
// renamed over the target, so a failed write leaves the old file intact.
// The permissions of an existing file are kept.
func (s *FileStore) Save(ctx context.Context, collection string, records []reconcile.Record) error {
	if err := validateCollection(collection); err != nil {
		return err
	}

	target := s.Path(collection)
	mode := os.FileMode(0o644)
	if info, err := os.Stat(target); err == nil {
		mode = info.Mode().Perm()
	}

	tempFile, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()
	defer func() { _ = os.Remove(tempPath) }()

	if err := Encode(tempFile, records); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("failed to write records: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tempPath, mode); err != nil {
		return fmt.Errorf("failed to set file mode: %w", err)
	}

	// Atomically move temp file to final location
	if err := os.Rename(tempPath, target); err != nil {
		return fmt.Errorf("failed to replace %s: %w", target, err)
	}

	return nil
}
