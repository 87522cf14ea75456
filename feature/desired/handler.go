package desired

import (
	"shadow-sync/core/apperror"
	"shadow-sync/core/logger"
	"shadow-sync/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for desired-state updates.
type Handler struct {
	reconciler *Reconciler
	logger     *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(reconciler *Reconciler, logger *zap.Logger) *Handler {
	return &Handler{reconciler: reconciler, logger: logger}
}

// RegisterRoutes registers the desired-state routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Put("/shadows/:id/desired", h.HandleUpdateDesired)
}

// HandleUpdateDesired merges a configuration push into a device's desired state.
// @Summary Update Desired State
// @Description Validates the desired version, drops schedule arrays identical to the shadow and merges the rest into the desired section. With dry_run=true the plan is returned and nothing is written.
// @Tags shadows
// @Accept json
// @Produce json
// @Param id path string true "Device ID"
// @Param dry_run query boolean false "Return the plan without writing"
// @Param request body Request true "Desired update"
// @Success 200 {object} map[string]interface{} "Merged shadow, or the plan on dry run"
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 502 {object} map[string]string "Store Error"
// @Router /shadows/{id}/desired [put]
func (h *Handler) HandleUpdateDesired(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req Request
	if err := c.BodyParser(&req); err != nil {
		return server.RespondError(c, apperror.Validation("invalid request body: %v", err))
	}
	req.DeviceID = c.Params("id")

	if c.QueryBool("dry_run") {
		plan, err := h.reconciler.Plan(c.Context(), req)
		if err != nil {
			return server.RespondError(c, err)
		}
		return c.JSON(plan)
	}

	doc, plan, err := h.reconciler.Reconcile(c.Context(), req)
	if err != nil {
		return server.RespondError(c, err)
	}

	l.Info("Desired state updated",
		zap.String("device_id", req.DeviceID),
		zap.Int("version", plan.DesiredVersion),
		zap.Strings("skipped", plan.Skipped),
	)
	return c.JSON(doc)
}
