package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog-ingest/core/config"
	"catalog-ingest/core/database"
	"catalog-ingest/core/itemapi"
	"catalog-ingest/core/loader"
	"catalog-ingest/core/logger"
	"catalog-ingest/core/middleware/auth"
	"catalog-ingest/core/middleware/rayid"
	"catalog-ingest/core/storage"

	"catalog-ingest/feature/ingest"
	"catalog-ingest/feature/integrity"
	"catalog-ingest/feature/items"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "catalog-ingest/docs/swagger"
)

// @title Catalog Ingest API
// @version 1.0
// @description Upload catalog extracts and reconcile them with the item store.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the catalog ingest server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect the mock item store database (optional)
		var db *gorm.DB
		if cfg.Server.MockStore {
			if conn, err := database.Connect(cfg.Database); err != nil {
				logg.Warn("Optional database connection failed", zap.Error(err))
			} else {
				db = conn
				logg.Info("Connected to item store database", zap.String("driver", cfg.Database.Driver))
			}
		}

		// 4. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		bucketCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := storage.EnsureBucket(bucketCtx, store, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			logg.Warn("Staging bucket unavailable, uploads will fail", zap.Error(err))
		}
		cancel()

		// 5. Item API client, shared by every run
		client, err := itemapi.NewHTTPClient(cfg.ItemAPI, logg)
		if err != nil {
			logg.Fatal("Failed to create item API client", zap.Error(err))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             64 * 1024 * 1024,
		})

		// 6. Feature Loader
		ingestSvc := ingest.NewService(storage.NewUploads(store, cfg.Storage.Bucket, cfg.Ingest.UploadPrefix), client, cfg.Ingest, logg)
		latency := time.Duration(cfg.Server.MockLatencyMs) * time.Millisecond

		mgr := loader.NewManager()
		mgr.Register(ingest.NewFeature(ingestSvc))
		mgr.Register(items.NewFeature(db, cfg.Server.MockStore, latency, logg))
		mgr.Register(integrity.NewFeature(integrity.NewService(store, cfg.Storage.Bucket, cfg.Storage.Region, client, db, logg)))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging with the ray id
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

		// 3. Public routes
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})

		// 4. Auth (Protect API)
		app.Use(auth.New(auth.Config{
			ApiKey: cfg.Server.ApiKey,
			Skip:   func(c *fiber.Ctx) bool { return cfg.Server.IsPublicPath(c.Path()) },
		}))

		// 5. Load Features
		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

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

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownSeconds)*time.Second)
		defer cancelShutdown()
		if err := ingestSvc.Shutdown(shutdownCtx); err != nil {
			logg.Warn("Running extracts were cancelled", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
