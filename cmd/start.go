package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"shadow-sync/core/loader"
	"shadow-sync/core/logger"
	"shadow-sync/core/metrics"
	"shadow-sync/core/middleware/auth"
	"shadow-sync/core/middleware/rayid"

	"shadow-sync/feature/desired"
	"shadow-sync/feature/integrity"
	"shadow-sync/feature/reported"
	shadowfeature "shadow-sync/feature/shadow"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "shadow-sync/docs/swagger"
)

// @title Shadow Sync API
// @version 1.0
// @description API for reconciling device shadows.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the shadow sync server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration and Logger
		cfg, logg, err := loadRuntime()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if !cfg.Server.IsValidEnvironment() {
			logg.Warn("Unrecognised server environment", zap.String("environment", cfg.Server.Environment))
		}
		logg = logg.With(zap.String("environment", cfg.Server.Environment))

		// 2. Connect the shadow store
		b, err := openBackend(cfg, logg)
		if err != nil {
			logg.Fatal("Failed to open shadow store", zap.Error(err))
		}

		// 3. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 4. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(desired.NewFeature(b.store, cfg.Reconcile, logg))
		mgr.Register(reported.NewFeature(b.store, cfg.Reconcile, logg))
		mgr.Register(shadowfeature.NewFeature(b.store, logg))
		mgr.Register(integrity.NewFeature(b.client, cfg.Storage.Bucket, cfg.Storage.Region, b.db, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging with the ray id attached
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Public endpoints
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

		// 4. Auth protects everything registered after it
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
