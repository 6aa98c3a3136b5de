package ingest

import (
	"fmt"

	"catalog-ingest/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for extracts.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the extract routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/extract")
	group.Post("/", h.HandleLaunch)
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
}

// HandleLaunch accepts an extract upload and starts its run.
// @Summary Launch Extract
// @Description Upload a CSV extract; it is reconciled with the item store in the background.
// @Tags extract
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV extract"
// @Success 200 {object} LaunchResponse "Extract launched"
// @Failure 400 {object} map[string]string "No file or launch failure"
// @Router /extract [post]
func (h *Handler) HandleLaunch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	fh, err := c.FormFile("file")
	if err != nil {
		l.Error("Extract was provided no file")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	file, err := fh.Open()
	if err != nil {
		l.Error("Extract upload could not be read", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}
	defer file.Close()

	runID, err := h.service.Launch(c.UserContext(), file, fh.Size)
	if err != nil {
		l.Error("Extract could not be launched", zap.String(logger.RunKey, runID), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Extract %s could not be launched", runID),
		})
	}

	return c.JSON(LaunchResponse{
		Message: fmt.Sprintf("Extract %s launched", runID),
		RunID:   runID,
	})
}

// HandleGet returns the status of one run.
// @Summary Get Extract
// @Description Get the status of an extraction run.
// @Tags extract
// @Produce json
// @Param id path string true "Extract id"
// @Success 200 {object} Run "Run status"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /extract/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	run, ok := h.service.Get(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "extract not found",
		})
	}
	return c.JSON(run)
}

// HandleList returns every run.
// @Summary List Extracts
// @Description List extraction runs of this process, oldest first.
// @Tags extract
// @Produce json
// @Success 200 {array} Run "Runs"
// @Router /extract [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}
