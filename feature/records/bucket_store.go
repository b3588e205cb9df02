package records

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"account-list/core/reconcile"
	"account-list/core/storage"

	"github.com/minio/minio-go/v7"
)

// BucketStore keeps each collection as a CSV object in an S3/MinIO bucket.
type BucketStore struct {
	client    storage.Client
	bucket    string
	prefix    string
	extension string
}

// NewBucketStore creates a store for objects under cfg.Dir in bucket.
func NewBucketStore(client storage.Client, bucket string, cfg Config) *BucketStore {
	return &BucketStore{
		client:    client,
		bucket:    bucket,
		prefix:    cfg.Dir,
		extension: cfg.Extension,
	}
}

// ObjectName returns the object key that holds the named collection.
func (s *BucketStore) ObjectName(collection string) string {
	return path.Join(s.prefix, collection+s.extension)
}

// Load downloads and decodes the named collection.
func (s *BucketStore) Load(ctx context.Context, collection string) ([]reconcile.Record, error) {
	if err := validateCollection(collection); err != nil {
		return nil, err
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", s.bucket)
	}

	reader, err := s.client.GetObject(ctx, s.bucket, s.ObjectName(collection), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get records object: %w", err)
	}
	defer reader.Close()

	return Decode(reader)
}

// Save encodes the collection and uploads it in a single PutObject, which
// replaces the previous object as a whole.
func (s *BucketStore) Save(ctx context.Context, collection string, records []reconcile.Record) error {
	if err := validateCollection(collection); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, records); err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}

	_, err := s.client.PutObject(ctx, s.bucket, s.ObjectName(collection), &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return fmt.Errorf("failed to put records object: %w", err)
	}

	return nil
}
