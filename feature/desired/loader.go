package desired

import (
	"shadow-sync/core/reconcile"
	"shadow-sync/core/shadow"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	reconciler *Reconciler
	handler    *Handler
}

// NewFeature creates the desired-state feature.
func NewFeature(store shadow.Store, cfg reconcile.Config, logger *zap.Logger) *Feature {
	r := NewReconciler(store, nil, cfg, logger)
	return &Feature{reconciler: r, handler: NewHandler(r, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "desired"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
