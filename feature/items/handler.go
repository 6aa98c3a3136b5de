package items

import (
	"errors"
	"strings"

	"catalog-ingest/core/itemapi"
	"catalog-ingest/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the item store.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the item store routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/items")
	group.Get("/byFederatedIds", h.HandleLookup)
	group.Post("/batch", h.HandleCreate)
	group.Put("/batch", h.HandleUpdate)
	group.Get("/all", h.HandleAll)
}

// HandleLookup returns the items matching the given federated ids.
// @Summary Lookup Items
// @Description Get stored items by comma separated federated ids.
// @Tags items
// @Produce json
// @Param federatedIds query string true "Comma separated federated ids"
// @Success 200 {object} itemapi.ItemsResponse "Matching items"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /items/byFederatedIds [get]
func (h *Handler) HandleLookup(c *fiber.Ctx) error {
	ids := splitIDs(c.Query("federatedIds"))
	if len(ids) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "federatedIds is required",
		})
	}

	found, err := h.service.Lookup(c.UserContext(), ids)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(itemapi.ItemsResponse{Items: found})
}

// HandleCreate stores a batch of new items.
// @Summary Create Items
// @Description Store a batch of items, assigning a new id to each.
// @Tags items
// @Accept json
// @Produce json
// @Param request body itemapi.CreateRequest true "Items to create"
// @Success 200 {object} map[string]bool "Success"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /items/batch [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var req itemapi.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if _, err := h.service.Create(c.UserContext(), req.Items); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleUpdate overwrites a batch of stored items.
// @Summary Update Items
// @Description Overwrite a batch of items by id.
// @Tags items
// @Accept json
// @Produce json
// @Param request body itemapi.UpdateRequest true "Items to update"
// @Success 200 {object} map[string]bool "Success"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /items/batch [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	var req itemapi.UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.service.Update(c.UserContext(), req.Items); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleAll returns every stored item.
// @Summary List Items
// @Description Get every stored item.
// @Tags items
// @Produce json
// @Success 200 {object} itemapi.ItemsResponse "All items"
// @Router /items/all [get]
func (h *Handler) HandleAll(c *fiber.Ctx) error {
	all, err := h.service.All(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(itemapi.ItemsResponse{Items: all})
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if errors.Is(err, ErrMissingID) {
		status = fiber.StatusBadRequest
	}
	logger.WithRayID(h.logger, c).Error("Item store request failed", zap.Error(err))
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func splitIDs(raw string) []string {
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
