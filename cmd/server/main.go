// Package main is the entry point for the flight offer search service.
//
//	@title						Flight Offer Search API
//	@version					1.0.0
//	@description				A flight offer search service that queries an upstream provider, normalizes the results, and serves filtered, sorted offers with a price-by-departure-hour trend.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-offers/offer-search-service/issues
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
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-offers/offer-search-service/docs"

	// Application layers
	offerhttp "github.com/flight-offers/offer-search-service/internal/adapter/http"
	"github.com/flight-offers/offer-search-service/internal/adapter/http/middleware"
	"github.com/flight-offers/offer-search-service/internal/adapter/provider/amadeus"
	"github.com/flight-offers/offer-search-service/internal/config"
	"github.com/flight-offers/offer-search-service/internal/infrastructure/logger"
	"github.com/flight-offers/offer-search-service/internal/infrastructure/timeutil"
	"github.com/flight-offers/offer-search-service/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("provider_host", cfg.Amadeus.Host).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware (request ID, request logging, panic recovery)
	middleware.Setup(e, log.Logger)

	// Setup routes
	setupRoutes(e, cfg)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e)
}

// setupLogger configures the global zerolog logger based on config.
func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	appLogger := logger.New(logCfg)
	logger.SetGlobal(appLogger)
	log.Logger = appLogger.Logger
}

// setupRoutes wires the provider client, use case, and HTTP handlers.
func setupRoutes(e *echo.Echo, cfg *config.Config) {
	// One HTTP client shared by the token exchange and the API calls
	httpClient := &http.Client{Timeout: cfg.Amadeus.Timeout}

	tokens := amadeus.NewTokenSource(
		httpClient,
		cfg.Amadeus.Host,
		cfg.Amadeus.ClientID,
		cfg.Amadeus.ClientSecret,
		timeutil.NewRealClock(),
	)
	provider := amadeus.NewClient(httpClient, cfg.Amadeus.Host, tokens)

	offerUseCase := usecase.NewOfferSearchUseCase(provider, cfg.Amadeus.Timeout)
	offerHandler := offerhttp.NewOfferHandler(offerUseCase)

	offerhttp.RegisterRoutes(e, offerHandler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
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
