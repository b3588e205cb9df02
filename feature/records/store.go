package records

import (
	"fmt"
	"path/filepath"
	"strings"

	"account-list/core/reconcile"
	"account-list/core/storage"
)

// NewStore builds the record store selected by cfg.Driver.
// The bucket driver connects to object storage using storageCfg.
func NewStore(cfg Config, storageCfg storage.Config) (reconcile.Store, error) {
	switch cfg.Driver {
	case DriverFile:
		return NewFileStore(cfg), nil
	case DriverBucket:
		client, err := storage.NewClient(storageCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
		return NewBucketStore(client, storageCfg.Bucket, cfg), nil
	default:
		return nil, fmt.Errorf("unknown records driver %q", cfg.Driver)
	}
}

// validateCollection rejects names that would escape the collection directory.
func validateCollection(collection string) error {
	if strings.TrimSpace(collection) == "" {
		return fmt.Errorf("collection name is empty")
	}
	if filepath.IsAbs(collection) {
		return fmt.Errorf("collection %q must be a name, not a path", collection)
	}
	for _, part := range strings.FieldsFunc(collection, func(r rune) bool { return r == '/' || r == '\\' }) {
		if part == ".." {
			return fmt.Errorf("collection %q must not contain '..'", collection)
		}
	}
	return nil
}
