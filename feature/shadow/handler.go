package shadow

import (
	"shadow-sync/core/logger"
	"shadow-sync/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for shadow reads.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the shadow routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/shadows")
	group.Get("/:id", h.HandleGetShadow)
	group.Post("/:id/delta", h.HandleTriggerDelta)
}

// HandleGetShadow returns a device shadow.
// @Summary Get Shadow
// @Description Returns the desired, reported and delta sections of a device shadow.
// @Tags shadows
// @Produce json
// @Param id path string true "Device ID"
// @Success 200 {object} map[string]interface{} "Shadow document"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 502 {object} map[string]string "Store Error"
// @Router /shadows/{id} [get]
func (h *Handler) HandleGetShadow(c *fiber.Ctx) error {
	doc, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return server.RespondError(c, err)
	}
	return c.JSON(doc)
}

// HandleTriggerDelta re-publishes the pending delta of a device.
// @Summary Trigger Delta
// @Description Performs an empty update on the shadow so the device is sent its current delta.
// @Tags shadows
// @Produce json
// @Param id path string true "Device ID"
// @Param clientToken query string false "Client token echoed in the update, generated when empty"
// @Success 200 {object} map[string]interface{} "Updated shadow document"
// @Failure 502 {object} map[string]string "Store Error"
// @Router /shadows/{id}/delta [post]
func (h *Handler) HandleTriggerDelta(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	doc, token, err := h.service.TriggerDelta(c.Context(), c.Params("id"), c.Query("clientToken"))
	if err != nil {
		return server.RespondError(c, err)
	}
	l.Info("Delta requested", zap.String("device_id", c.Params("id")), zap.String("client_token", token))
	return c.JSON(doc)
}
