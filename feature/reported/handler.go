package reported

import (
	"shadow-sync/core/apperror"
	"shadow-sync/core/logger"
	"shadow-sync/core/reconcile"
	"shadow-sync/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reported-state updates.
type Handler struct {
	reconciler *Reconciler
	logger     *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(reconciler *Reconciler, logger *zap.Logger) *Handler {
	return &Handler{reconciler: reconciler, logger: logger}
}

// RegisterRoutes registers the reported-state routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Put("/shadows/:id/reported", h.HandleUpdateReported)
}

// HandleUpdateReported records a device report in the shadow.
// @Summary Update Reported State
// @Description Overlays positional schedule slots onto the stored reported arrays, converts legacy encodings and mirrors rptdVrs into desired. rptdVrs=0 clears the reported section. Telemetry without configuration returns a message and writes nothing.
// @Tags shadows
// @Accept json
// @Produce json
// @Param id path string true "Device ID"
// @Param dry_run query boolean false "Return the plan without writing"
// @Param request body Request true "Reported update"
// @Success 200 {object} map[string]interface{} "Merged shadow, a no-op message, or the plan on dry run"
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 502 {object} map[string]string "Store Error"
// @Router /shadows/{id}/reported [put]
func (h *Handler) HandleUpdateReported(c *fiber.Ctx) error {
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
	if plan.Outcome == reconcile.OutcomeNoop {
		return c.JSON(fiber.Map{"message": plan.Message})
	}

	l.Info("Reported state updated",
		zap.String("device_id", req.DeviceID),
		zap.String("outcome", string(plan.Outcome)),
		zap.Int("version", plan.ReportedVersion),
	)
	return c.JSON(doc)
}
