package items

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog-ingest/core/catalog"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrMissingID is returned when an update carries an item without store id.
var ErrMissingID = errors.New("item has no id")

// Service implements the item store operations.
type Service struct {
	repo    *Repository
	latency time.Duration
	logger  *zap.Logger
}

// NewService creates a service. latency delays every store operation.
func NewService(repo *Repository, latency time.Duration, logger *zap.Logger) *Service {
	return &Service{repo: repo, latency: latency, logger: logger}
}

// Lookup returns the stored items with one of ids.
func (s *Service) Lookup(ctx context.Context, ids []string) ([]catalog.StoredItem, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	records, err := s.repo.FindByFederatedIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to lookup items: %w", err)
	}
	s.logger.Info("Item store lookup", zap.Int("requested", len(ids)), zap.Int("found", len(records)))
	return toStored(records), nil
}

// Create stores items under freshly generated ids.
func (s *Service) Create(ctx context.Context, items []catalog.Item) ([]catalog.StoredItem, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	records := make([]ItemRecord, 0, len(items))
	for _, item := range items {
		records = append(records, recordFrom(uuid.NewString(), item))
	}
	if len(records) > 0 {
		if err := s.repo.CreateBatch(ctx, records); err != nil {
			return nil, fmt.Errorf("failed to create %d items: %w", len(records), err)
		}
	}
	s.logger.Info("Item store create", zap.Int("items", len(records)))
	return toStored(records), nil
}

// Update overwrites items by id.
func (s *Service) Update(ctx context.Context, items []catalog.StoredItem) error {
	records := make([]ItemRecord, 0, len(items))
	for _, item := range items {
		if item.ID == "" {
			return fmt.Errorf("%w: %s", ErrMissingID, item.FederatedID)
		}
		records = append(records, recordFrom(item.ID, item.Item))
	}
	if err := s.wait(ctx); err != nil {
		return err
	}
	if len(records) > 0 {
		if err := s.repo.Upsert(ctx, records); err != nil {
			return fmt.Errorf("failed to update %d items: %w", len(records), err)
		}
	}
	s.logger.Info("Item store update", zap.Int("items", len(records)))
	return nil
}

// All returns every stored item.
func (s *Service) All(ctx context.Context) ([]catalog.StoredItem, error) {
	records, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return toStored(records), nil
}

func (s *Service) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func toStored(records []ItemRecord) []catalog.StoredItem {
	out := make([]catalog.StoredItem, 0, len(records))
	for _, r := range records {
		out = append(out, r.ToStored())
	}
	return out
}
