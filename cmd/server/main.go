// Package main is the entry point for the route reliability ranking service.
//
//	@title						Route Reliability Ranking API
//	@version					1.0.0
//	@description				Ranks flight routes between two airports by combining historical delay statistics, recent flight performance, price, and duration.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/route-ranker/route-reliability-system/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/route-ranker/route-reliability-system/docs"

	// Application layers
	routehttp "github.com/route-ranker/route-reliability-system/internal/adapter/http"
	"github.com/route-ranker/route-reliability-system/internal/adapter/http/middleware"
	"github.com/route-ranker/route-reliability-system/internal/adapter/provider/aerodatabox"
	"github.com/route-ranker/route-reliability-system/internal/adapter/provider/amadeus"
	"github.com/route-ranker/route-reliability-system/internal/adapter/store/memstore"
	"github.com/route-ranker/route-reliability-system/internal/adapter/store/redisstore"
	"github.com/route-ranker/route-reliability-system/internal/config"
	"github.com/route-ranker/route-reliability-system/internal/domain"
	"github.com/route-ranker/route-reliability-system/internal/infrastructure/logger"
	"github.com/route-ranker/route-reliability-system/internal/infrastructure/timeutil"
	"github.com/route-ranker/route-reliability-system/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "route-ranker",
	})
	logger.SetGlobal(log)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	// Build the profile store: Redis when configured, in-memory otherwise.
	store, closeStore, err := buildStore(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize profile store")
	}
	defer closeStore()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, log.Logger)

	// Setup routes
	setupRoutes(e, cfg, store, log)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// buildStore selects the profile store backend from config.
func buildStore(cfg *config.Config, log *logger.Logger) (domain.ProfileStore, func(), error) {
	if cfg.Redis.Addr == "" {
		log.Info().Msg("No REDIS_ADDR configured, using in-memory store")
		return memstore.New(), func() {}, nil
	}

	store, err := redisstore.New(redisstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, log)
	if err != nil {
		return nil, nil, err
	}

	return store, func() {
		if err := store.Close(); err != nil {
			log.Warn().Err(err).Msg("Error closing redis store")
		}
	}, nil
}

// setupRoutes wires the provider clients, use case, and HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, store domain.ProfileStore, log *logger.Logger) {
	routeProvider := amadeus.NewClient(amadeus.Config{
		BaseURL:      cfg.Amadeus.BaseURL,
		ClientID:     cfg.Amadeus.ClientID,
		ClientSecret: cfg.Amadeus.ClientSecret,
		Timeout:      cfg.Amadeus.Timeout,
	}, log)

	delayProvider := aerodatabox.NewClient(aerodatabox.Config{
		BaseURL:           cfg.AeroDataBox.BaseURL,
		APIKey:            cfg.AeroDataBox.APIKey,
		APIHost:           cfg.AeroDataBox.APIHost,
		Timeout:           cfg.AeroDataBox.Timeout,
		RequestsPerSecond: cfg.AeroDataBox.RequestsPerSecond,
		Burst:             cfg.AeroDataBox.Burst,
	}, log)

	clock := timeutil.NewRealClock()

	analyzer := usecase.NewFlightAnalyzer(delayProvider, delayProvider, store, clock, usecase.AnalyzerConfig{
		DaysBack:           cfg.Analysis.DaysBack,
		IncludePredictions: cfg.Analysis.IncludePredictions,
		ProfileTTL:         cfg.Cache.ProfileTTL,
	}, log)

	rankingUseCase := usecase.NewRouteRankingUseCase(
		routeProvider, analyzer, store, clock, cfg.Cache.RouteTTL, log)

	handler := routehttp.NewRouteHandler(rankingUseCase)
	routehttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
