package storage

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/minio/minio-go/v7"
)

// ExtractContentType is the content type extracts are staged with.
const ExtractContentType = "text/csv"

// Uploads stages uploaded extracts under a key prefix of one bucket.
type Uploads struct {
	client Client
	bucket string
	prefix string
}

// NewUploads creates an upload area in bucket under prefix.
func NewUploads(client Client, bucket, prefix string) *Uploads {
	return &Uploads{client: client, bucket: bucket, prefix: prefix}
}

// Key returns the object key of a run's extract.
func (u *Uploads) Key(runID string) string {
	return path.Join(u.prefix, runID+".csv")
}

// Stage uploads the extract of runID. size may be -1 when unknown.
func (u *Uploads) Stage(ctx context.Context, runID string, r io.Reader, size int64) (string, error) {
	key := u.Key(runID)
	_, err := u.client.PutObject(ctx, u.bucket, key, r, size, minio.PutObjectOptions{ContentType: ExtractContentType})
	if err != nil {
		return "", fmt.Errorf("failed to stage extract %s: %w", key, err)
	}
	return key, nil
}

// Open streams a staged extract.
func (u *Uploads) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := u.client.GetObject(ctx, u.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to open extract %s: %w", key, err)
	}
	return obj, nil
}

// Remove deletes a staged extract.
func (u *Uploads) Remove(ctx context.Context, key string) error {
	if err := u.client.RemoveObject(ctx, u.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove extract %s: %w", key, err)
	}
	return nil
}
