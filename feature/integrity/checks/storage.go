package checks

import (
	"context"
	"fmt"

	"catalog-ingest/core/storage"

	"go.uber.org/zap"
)

// StorageReport is the result of a storage check.
type StorageReport struct {
	Bucket  string `json:"bucket"`
	Exists  bool   `json:"exists"`
	Created bool   `json:"created"`
}

// CheckStorage verifies the staging bucket exists.
func CheckStorage(ctx context.Context, client storage.Client, bucket string) (*StorageReport, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	return &StorageReport{Bucket: bucket, Exists: exists}, nil
}

// FixStorage creates the staging bucket when the report says it is missing.
func FixStorage(ctx context.Context, client storage.Client, report *StorageReport, region string, logger *zap.Logger) error {
	if report.Exists {
		return nil
	}
	if err := storage.EnsureBucket(ctx, client, report.Bucket, region); err != nil {
		logger.Error("Failed to create bucket", zap.String("bucket", report.Bucket), zap.Error(err))
		return err
	}
	logger.Info("Created missing bucket", zap.String("bucket", report.Bucket))
	report.Exists = true
	report.Created = true
	return nil
}
