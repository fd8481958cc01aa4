package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"vendora/merchant-console/merchant-console-backend/internal/auth"
	"vendora/merchant-console/merchant-console-backend/internal/config"
	"vendora/merchant-console/merchant-console-backend/internal/notifications"
	"vendora/merchant-console/merchant-console-backend/internal/onboarding"
	"vendora/merchant-console/merchant-console-backend/internal/provisioning"
	"vendora/merchant-console/merchant-console-backend/internal/settings"
	"vendora/merchant-console/merchant-console-backend/internal/tenant"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, relying on environment")
	}

	// Load configuration
	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Connect to database
	dbURL := cfg.Database.GetDatabaseURL()
	logger.Info("Connecting to database",
		zap.String("host", cfg.Database.Host),
		zap.String("db", cfg.Database.DBName))

	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	gormDB, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to open gorm connection", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(&tenant.Tenant{}, &tenant.AdminUser{}); err != nil {
		logger.Fatal("Failed to migrate tenant schema", zap.Error(err))
	}

	// Tenant module
	tenantRepo := tenant.NewRepository(gormDB)
	tenantService := tenant.NewService(tenantRepo, tenant.AuthConfig{
		JWTSecret: cfg.Auth.JWTSecret,
		TokenTTL:  cfg.Auth.TokenTTL,
	}, logger)

	// Merchant settings module
	settingsRepo := settings.NewRepository(db)
	settingsService := settings.NewService(settingsRepo)
	settingsHandler := settings.NewHandler(settingsService)

	// Onboarding module
	jobRepo := provisioning.NewRepository(db)
	onboardingRepo := onboarding.NewRepository(db)
	onboardingService := onboarding.NewService(onboardingRepo, tenantService, jobRepo, settingsService, logger)
	onboardingHandler := onboarding.NewHandler(onboardingService, logger)

	// Status push hub, fed by the provisioning worker's Postgres
	// notifications.
	hub := notifications.NewHub(logger)
	defer hub.Close()

	listenerCtx, stopListener := context.WithCancel(context.Background())
	defer stopListener()
	listener := notifications.NewListener(dbURL, hub, logger)
	go func() {
		if err := listener.Run(listenerCtx); err != nil {
			logger.Error("Status listener stopped", zap.Error(err))
		}
	}()

	// Setup Router
	router := gin.Default()

	// CORS Middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Register Routes
	api := router.Group("/api/v1")
	{
		onboardingHandler.RegisterRoutes(api)
		settingsHandler.RegisterRoutes(api.Group("/merchant/settings", auth.RequireTenantAdmin(cfg.Auth.JWTSecret)))
		api.GET("/merchant/onboarding/watch/:tenantId", hub.HandleWS)
	}

	// Health Check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
		})
	})

	// Prune onboarding requests whose provisioning failed and was never retried
	scheduler := cron.New(cron.WithSeconds())
	_, err = scheduler.AddFunc(cfg.Cleanup.CronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		n, err := onboardingService.PruneAbandoned(ctx, cfg.Cleanup.PruneAfter)
		if err != nil {
			logger.Error("Abandoned onboarding prune failed", zap.Error(err))
			return
		}
		if n > 0 {
			logger.Info("Pruned abandoned onboarding requests", zap.Int64("count", n))
		}
	})
	if err != nil {
		logger.Fatal("Failed to schedule cleanup job", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Start Server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen: %s\n", zap.Error(err))
		}
	}()

	logger.Info("Onboarding API started", zap.Int("port", cfg.Server.Port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", zap.Error(err))
	}

	logger.Info("Server exiting")
}
