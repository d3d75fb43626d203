package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dashboardapp "github.com/acme/dashboard-gateway/internal/application/dashboard"
	identityapp "github.com/acme/dashboard-gateway/internal/application/identity"
	"github.com/acme/dashboard-gateway/internal/infrastructure/backend"
	"github.com/acme/dashboard-gateway/internal/infrastructure/cache"
	"github.com/acme/dashboard-gateway/internal/infrastructure/config"
	"github.com/acme/dashboard-gateway/internal/infrastructure/logger"
	"github.com/acme/dashboard-gateway/internal/interfaces/http/handler"
	"github.com/acme/dashboard-gateway/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting dashboard gateway",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("backend", cfg.Backend.BaseURL),
	)

	// Initialize backend HTTP client and per-resource clients
	client, err := backend.NewClient(backend.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
	})
	if err != nil {
		log.Fatal("Failed to create backend client", zap.Error(err))
	}
	invoiceRepo := backend.NewInvoiceClient(client)
	customerRepo := backend.NewCustomerClient(client)
	revenueRepo := backend.NewRevenueClient(client)
	userRepo := backend.NewUserClient(client)

	// Initialize view invalidation. Without Redis, mutations still
	// succeed; stale views simply expire on their own.
	var invalidator dashboardapp.ViewInvalidator = cache.NoopInvalidator{}
	if cfg.Redis.Enabled {
		redisInvalidator, err := cache.NewRedisViewInvalidator(cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cache.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisInvalidator.Close(); err != nil {
				log.Error("Error closing Redis connection", zap.Error(err))
			}
		}()
		invalidator = redisInvalidator
		log.Info("View invalidation enabled", zap.String("channel", cache.DefaultChannel))
	}

	// Initialize application services
	dashboardService := dashboardapp.NewDashboardService(invoiceRepo, customerRepo, revenueRepo, log)
	invoiceService := dashboardapp.NewInvoiceService(invoiceRepo, invalidator, log)
	customerService := dashboardapp.NewCustomerService(customerRepo, log)
	authService := identityapp.NewAuthService(userRepo, log)

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := router.Setup(log, router.Handlers{
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Invoice:   handler.NewInvoiceHandler(invoiceService),
		Customer:  handler.NewCustomerHandler(customerService),
		Auth:      handler.NewAuthHandler(authService),
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
