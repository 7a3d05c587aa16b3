package main

import (
	"context"
	"crypto/subtle"
	"log"
	"net/http"
	"time"

	"content-humanizer/config"
	"content-humanizer/humanizer"
	"content-humanizer/services"
	"content-humanizer/storage"
	"content-humanizer/store"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// apiKeyAuthMiddleware schützt die Admin-Routen. Ohne API_SECRET_KEY ist alles offen.
func apiKeyAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	secret := []byte(cfg.APISecretKey)
	return func(c *gin.Context) {
		if len(secret) == 0 {
			c.Next()
			return
		}
		if subtle.ConstantTimeCompare([]byte(c.GetHeader("X-API-KEY")), secret) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "content-humanizer: missing or invalid X-API-KEY header",
			})
			return
		}
		c.Next()
	}
}

func newRouter(cfg *config.Config, svc *services.HumanizeService, logging *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(apiKeyAuthMiddleware(cfg))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	setupHumanizeRoutes(router, svc, logging)
	return router
}

func newEngine(cfg *config.Config) *humanizer.Humanizer {
	return humanizer.New(
		humanizer.WithStarterThreshold(cfg.StarterThreshold),
		humanizer.WithTouchThreshold(cfg.TouchThreshold),
	)
}

func main() {
	logging, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logging.Sync()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Config load error", zap.Error(err))
	}

	// Setup Database Connection
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		logging.Fatal("Failed to connect to content database", zap.Error(err))
	}
	logging.Info("Successfully connected to content database.")

	contentStore := store.NewGormStore(db)
	logging.Info("Running database auto-migration...")
	if err := contentStore.Migrate(); err != nil {
		logging.Fatal("Auto-migration failed", zap.Error(err))
	}

	// Reports sind optional
	var reports services.ReportStore
	if cfg.ReportsEnabled() {
		rs, err := storage.NewReportStore(context.Background(), cfg, logging)
		if err != nil {
			logging.Fatal("S3 client creation failed", zap.Error(err))
		}
		reports = rs
		logging.Info("Run reports enabled", zap.String("bucket", cfg.ReportS3Bucket))
	}

	svc := services.NewHumanizeService(contentStore, newEngine(cfg), reports, logging, services.HumanizeOptions{
		Sanitize:         cfg.HumanizeSanitize,
		Concurrency:      cfg.HumanizeConcurrency,
		SampleLength:     cfg.SampleLength,
		PreviewMinLength: cfg.PreviewMinLength,
	})

	router := newRouter(cfg, svc, logging)

	// Setup Cron
	if cfg.HumanizeCron != "" {
		cronScheduler := cron.New()
		_, err := cronScheduler.AddFunc(cfg.HumanizeCron, func() {
			logging.Info("Running scheduled humanization job...")
			run, err := svc.RunAll(context.Background(), false)
			if err != nil {
				logging.Error("Cron job failed", zap.Error(err))
				return
			}
			logging.Info("Cron job completed", zap.String("run_id", run.RunID), zap.Int("updated", run.TotalUpdated))
		})
		if err != nil {
			logging.Fatal("Invalid HUMANIZE_CRON", zap.String("schedule", cfg.HumanizeCron), zap.Error(err))
		}
		cronScheduler.Start()
		defer cronScheduler.Stop()
	}

	logging.Info("Starting server", zap.String("port", cfg.HTTPPort))
	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      10 * time.Minute,
		IdleTimeout:       120 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logging.Fatal("Failed to run server", zap.Error(err))
	}
}
