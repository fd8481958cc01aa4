package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"vendora/merchant-console/merchant-console-backend/internal/config"
	"vendora/merchant-console/merchant-console-backend/internal/notifications"
	"vendora/merchant-console/merchant-console-backend/internal/provisioning"
	"vendora/merchant-console/merchant-console-backend/internal/tenant"
)

// Provisioning worker. Drains queued tenant jobs and walks each through the
// pipeline stages, one stage per tick. Runs alongside the onboarding API and
// shares its database.
func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, relying on environment")
	}

	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	dbURL := cfg.Database.GetDatabaseURL()
	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	gormDB, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to open gorm connection", zap.Error(err))
	}

	tenantRepo := tenant.NewRepository(gormDB)
	tenantService := tenant.NewService(tenantRepo, tenant.AuthConfig{
		JWTSecret: cfg.Auth.JWTSecret,
		TokenTTL:  cfg.Auth.TokenTTL,
	}, logger)

	// Transitions are published over Postgres; the API process listens and
	// pushes them to its websocket subscribers.
	broadcaster := notifications.NewPgBroadcaster(db, logger)

	pipeline := provisioning.NewPipeline(
		provisioning.NewRepository(db),
		tenantService,
		broadcaster,
		logger,
		provisioning.PipelineConfig{
			PollInterval: cfg.Provisioning.PollInterval,
			BatchSize:    cfg.Provisioning.BatchSize,
		},
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info("Shutting down provisioning worker...")
		cancel()
	}()

	pipeline.Run(ctx)
	logger.Info("Provisioning worker exiting")
}
