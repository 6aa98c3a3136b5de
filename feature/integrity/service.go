package integrity

import (
	"context"

	"catalog-ingest/core/itemapi"
	"catalog-ingest/core/storage"
	"catalog-ingest/feature/integrity/checks"
	"catalog-ingest/feature/items"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	store  storage.Client
	bucket string
	region string
	client itemapi.Client
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new integrity service. db may be nil when the item
// store database is not configured.
func NewService(store storage.Client, bucket, region string, client itemapi.Client, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		bucket: bucket,
		region: region,
		client: client,
		db:     db,
		logger: logger,
	}
}

// CheckStorage reports on the staging bucket, creating it when fix is set.
func (s *Service) CheckStorage(ctx context.Context, fix bool) (*checks.StorageReport, error) {
	report, err := checks.CheckStorage(ctx, s.store, s.bucket)
	if err != nil || !fix {
		return report, err
	}
	if err := checks.FixStorage(ctx, s.store, report, s.region, s.logger); err != nil {
		return nil, err
	}
	return report, nil
}

// CheckDatabase verifies the item store schema.
func (s *Service) CheckDatabase() (*checks.DatabaseReport, error) {
	return checks.CheckDatabase(s.db, &items.ItemRecord{})
}

// CheckItemAPI probes the item store.
func (s *Service) CheckItemAPI(ctx context.Context) *checks.ItemAPIReport {
	return checks.CheckItemAPI(ctx, s.client)
}
