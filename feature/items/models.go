package items

import (
	"time"

	"catalog-ingest/core/catalog"
)

// ItemRecord is the persisted form of a stored item.
type ItemRecord struct {
	ID          string         `gorm:"primaryKey;size:36"`
	FederatedID string         `gorm:"index;size:191;not null"`
	Name        string         `gorm:"size:255"`
	Description string         `gorm:"type:text"`
	Roles       []catalog.Role `gorm:"serializer:json"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the table name used by ItemRecord.
func (ItemRecord) TableName() string {
	return "items"
}

// ToStored converts the record to its API form.
func (r ItemRecord) ToStored() catalog.StoredItem {
	return catalog.StoredItem{
		ID: r.ID,
		Item: catalog.Item{
			Name:        r.Name,
			Description: r.Description,
			FederatedID: r.FederatedID,
			Roles:       r.Roles,
		},
	}
}

func recordFrom(id string, item catalog.Item) ItemRecord {
	return ItemRecord{
		ID:          id,
		FederatedID: item.FederatedID,
		Name:        item.Name,
		Description: item.Description,
		Roles:       item.Roles,
	}
}
