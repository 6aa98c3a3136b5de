package integrity

import (
	"catalog-ingest/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/storage", h.HandleStorageCheck)
	group.Get("/database", h.HandleDatabaseCheck)
	group.Get("/itemapi", h.HandleItemAPICheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Checks the staging bucket, the item store database and the item API.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.UserContext()
	report := make(map[string]interface{})

	if storageReport, err := h.service.CheckStorage(ctx, false); err != nil {
		report["storage"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["storage"] = storageReport
	}

	if dbReport, err := h.service.CheckDatabase(); err != nil {
		report["database"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["database"] = dbReport
	}

	report["itemapi"] = h.service.CheckItemAPI(ctx)

	return c.JSON(report)
}

// HandleStorageCheck checks and optionally creates the staging bucket.
// @Summary Check Storage
// @Description Checks that the staging bucket exists. Optionally creates it.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create the bucket when missing"
// @Success 200 {object} checks.StorageReport "Storage Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckStorage(c.UserContext(), c.Query("fix") == "true")
	if err != nil {
		l.Error("Storage check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !report.Exists {
		l.Warn("Staging bucket missing", zap.String("bucket", report.Bucket))
	}
	return c.JSON(report)
}

// HandleDatabaseCheck verifies the item store schema.
// @Summary Check Database
// @Description Verifies every column of the item store models exists.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.DatabaseReport "Database Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/database [get]
func (h *Handler) HandleDatabaseCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckDatabase()
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Database check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleItemAPICheck probes the item store.
// @Summary Check Item API
// @Description Performs one lookup against the item store.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.ItemAPIReport "Item API Report"
// @Failure 503 {object} checks.ItemAPIReport "Item API unreachable"
// @Router /integrity/itemapi [get]
func (h *Handler) HandleItemAPICheck(c *fiber.Ctx) error {
	report := h.service.CheckItemAPI(c.UserContext())
	if !report.Reachable {
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}
