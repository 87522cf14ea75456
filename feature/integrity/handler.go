package integrity

import (
	"shadow-sync/core/logger"
	"shadow-sync/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.SchemaReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/bucket", h.HandleBucketCheck)
	group.Get("/schema", h.HandleSchemaCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Checks the shadow bucket and the shadows table in parallel, skipping whichever backend is not configured.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	var bucket, schema interface{}
	g, ctx := errgroup.WithContext(c.Context())

	g.Go(func() error {
		if !h.service.HasStorage() {
			bucket = map[string]interface{}{"status": "skipped"}
		} else if report, err := h.service.CheckBucket(ctx); err != nil {
			bucket = map[string]interface{}{"status": "error", "error": err.Error()}
		} else {
			bucket = report
		}
		return nil
	})

	g.Go(func() error {
		if !h.service.HasDatabase() {
			schema = map[string]interface{}{"status": "skipped"}
		} else if report, err := h.service.CheckSchema(); err != nil {
			schema = map[string]interface{}{"status": "error", "error": err.Error()}
		} else {
			schema = report
		}
		return nil
	})

	// Failures are part of the report, never returned.
	_ = g.Wait()

	report := map[string]interface{}{"bucket": bucket, "schema": schema}
	return c.JSON(report)
}

// HandleBucketCheck checks and optionally creates the shadow bucket.
// @Summary Check Bucket
// @Description Checks that the shadow bucket exists. Optionally creates it.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create the bucket when missing"
// @Success 200 {object} checks.BucketReport "Bucket Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/bucket [get]
func (h *Handler) HandleBucketCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	report, err := h.service.CheckBucket(c.Context())
	if err != nil {
		l.Error("Bucket check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !report.Exists && fix {
		l.Info("Attempting to create missing bucket")
		if report, err = h.service.FixBucket(c.Context()); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to create bucket",
				"details": err.Error(),
			})
		}
	}

	return c.JSON(report)
}

// HandleSchemaCheck checks the shadows table schema.
// @Summary Check Schema
// @Description Checks that the shadows table matches the expected columns and types.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting schema check")

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}
