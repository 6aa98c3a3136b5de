package items

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNoDatabase is returned when the feature is loaded without a database.
var ErrNoDatabase = errors.New("item store requires a database connection")

// Feature implements the loader.Feature interface.
type Feature struct {
	db      *gorm.DB
	enabled bool
	latency time.Duration
	logger  *zap.Logger
}

// NewFeature creates the item store feature.
func NewFeature(db *gorm.DB, enabled bool, latency time.Duration, logger *zap.Logger) *Feature {
	return &Feature{db: db, enabled: enabled, latency: latency, logger: logger}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "items"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load migrates the items table and registers the routes.
func (f *Feature) Load(app fiber.Router) error {
	if f.db == nil {
		return ErrNoDatabase
	}
	repo := NewRepository(f.db)
	if err := repo.Migrate(); err != nil {
		return err
	}
	NewHandler(NewService(repo, f.latency, f.logger), f.logger).RegisterRoutes(app)
	return nil
}
