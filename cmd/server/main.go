package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fundtransfer-api/internal/config"
	"fundtransfer-api/internal/database"
	"fundtransfer-api/internal/events"
	"fundtransfer-api/internal/events/kafka"
	"fundtransfer-api/internal/handlers"
	"fundtransfer-api/internal/middleware"
	"fundtransfer-api/internal/repositories"
	"fundtransfer-api/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := database.New(&cfg.Database)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(); err != nil {
		slog.Error("database migration failed", "error", err)
		os.Exit(1)
	}

	// Repositories
	accountRepo := repositories.NewAccountRepository(db.DB)
	transferRepo := repositories.NewTransferRepository(db.DB)

	// Services
	metrics := services.NewPrometheusMetrics()
	breaker := services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig())
	rateSource := services.NewExchangeRateService(cfg.ExchangeRate, breaker, metrics, logger)
	locks := services.NewAccountLocks()

	var publisher events.PublisherInterface = events.NoopPublisher{}
	var kafkaPublisher *kafka.Publisher
	if cfg.Kafka.Enabled {
		kafkaPublisher = kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		publisher = kafkaPublisher
	}

	transferService := services.NewTransferService(accountRepo, transferRepo, rateSource, locks, publisher, metrics, logger)
	accountService := services.NewAccountService(accountRepo, metrics, logger)

	// Handlers
	transferHandler := handlers.NewTransferHandler(transferService)
	accountHandler := handlers.NewAccountHandler(accountService)
	healthHandler := handlers.NewHealthCheckHandler(db.DB)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitRPS, cfg.Security.RateLimitBurst))
	e.Use(echomiddleware.Logger())

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.POST("/transfers", transferHandler.ExecuteTransfer)
	api.GET("/transfers", transferHandler.ListTransfers)

	accounts := api.Group("/accounts", middleware.OpsBasicAuth(cfg.Security))
	accounts.POST("", accountHandler.CreateAccount)
	accounts.GET("", accountHandler.ListAccounts)
	accounts.GET("/:accountId", accountHandler.GetAccount)
	accounts.PUT("/:accountId", accountHandler.UpdateAccount)
	accounts.PUT("/:accountId/activate", accountHandler.ActivateAccount)
	accounts.PUT("/:accountId/deactivate", accountHandler.DeactivateAccount)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		address := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("server starting", "address", address, "env", cfg.Server.Environment)
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			slog.Error("server stopped", "error", err)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}

	if kafkaPublisher != nil {
		if err := kafkaPublisher.Close(); err != nil {
			slog.Error("kafka publisher close failed", "error", err)
		}
	}

	if err := db.Close(); err != nil {
		slog.Error("database close failed", "error", err)
	}

	slog.Info("server exited")
}
