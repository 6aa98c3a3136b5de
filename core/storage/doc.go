// Package storage stages uploaded extracts in object storage.
//
// It wraps the MinIO Go client behind a small Client interface so handlers and
// services can be tested against core/storage/mocks. Both AWS S3 and
// self-hosted MinIO are supported.
//
// # Uploads
//
// Uploads keys every extract by its run id under a configurable prefix:
//
//	uploads := storage.NewUploads(client, cfg.Bucket, "uploads")
//	key, err := uploads.Stage(ctx, runID, file, size)
//	body, err := uploads.Open(ctx, key)
//
// EnsureBucket creates the bucket on startup when it is missing.
package storage
