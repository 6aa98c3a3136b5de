package items

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository persists item records.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the items table.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&ItemRecord{})
}

// FindByFederatedIDs returns every record carrying one of ids.
func (r *Repository) FindByFederatedIDs(ctx context.Context, ids []string) ([]ItemRecord, error) {
	var records []ItemRecord
	err := r.db.WithContext(ctx).Where("federated_id IN ?", ids).Order("created_at").Find(&records).Error
	return records, err
}

// CreateBatch inserts records.
func (r *Repository) CreateBatch(ctx context.Context, records []ItemRecord) error {
	return r.db.WithContext(ctx).Create(&records).Error
}

// Upsert writes records by primary key, inserting unknown ids.
func (r *Repository) Upsert(ctx context.Context, records []ItemRecord) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&records).Error
}

// All returns every record.
func (r *Repository) All(ctx context.Context) ([]ItemRecord, error) {
	var records []ItemRecord
	err := r.db.WithContext(ctx).Order("created_at").Find(&records).Error
	return records, err
}
