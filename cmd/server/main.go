// Package main is the entry point for the flightfinder API server.
// It wires the SerpAPI flight source, the SQLite route graph, and the
// optional Redis result cache into the search use case and serves the
// HTTP API.
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
	"github.com/rs/zerolog/log"

	"github.com/flightfinder/flightfinder/internal/adapter/cache"
	flighthttp "github.com/flightfinder/flightfinder/internal/adapter/http"
	"github.com/flightfinder/flightfinder/internal/adapter/http/middleware"
	"github.com/flightfinder/flightfinder/internal/adapter/routecache"
	"github.com/flightfinder/flightfinder/internal/adapter/serpapi"
	"github.com/flightfinder/flightfinder/internal/config"
	"github.com/flightfinder/flightfinder/internal/infrastructure/logger"
	"github.com/flightfinder/flightfinder/internal/usecase"
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
		Msg("Configuration loaded")

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
	cleanup, err := setupRoutes(e, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer cleanup()

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

// setupLogger builds the application logger from config and installs it as
// the zerolog global so package-level log calls share it.
func setupLogger(cfg *config.Config) {
	appLog := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "flightfinder",
	})
	logger.SetGlobal(appLog)
	log.Logger = appLog.Logger
}

// setupRoutes wires the application layers and registers the HTTP routes.
// The returned cleanup function closes the route database and the result
// cache connection.
func setupRoutes(e *echo.Echo, cfg *config.Config) (func(), error) {
	// Flight source
	source, err := serpapi.NewClient(serpapi.Config{
		APIKey:       cfg.SerpAPI.APIKey,
		BaseURL:      cfg.SerpAPI.BaseURL,
		Timeout:      cfg.SerpAPI.Timeout,
		MaxRetries:   cfg.SerpAPI.MaxRetries,
		RequestDelay: cfg.SerpAPI.RequestDelay,
	})
	if err != nil {
		return nil, fmt.Errorf("create flight source: %w", err)
	}

	// Route graph for hidden-city discovery
	routes, err := routecache.Open(cfg.Routes.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open route database: %w", err)
	}
	finder := usecase.NewSkiplaggedFinder(routes)

	// Optional result cache. The service runs without it; a dead Redis at
	// startup is a configuration error and stops the boot.
	var resultCache usecase.ResultCache
	var redisCache *cache.RedisCache
	if cfg.Cache.Enabled {
		redisCache, err = cache.NewRedisCache(cache.Config{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
			TTL:      cfg.Cache.TTL,
		})
		if err != nil {
			routes.Close()
			return nil, fmt.Errorf("connect result cache: %w", err)
		}
		resultCache = redisCache
		log.Info().Str("addr", cfg.Cache.Addr).Dur("ttl", cfg.Cache.TTL).Msg("Result cache enabled")
	}

	// Search use case
	searchUC := usecase.NewSearchUseCase(source, finder, resultCache, log.Logger, &usecase.Config{
		GlobalTimeout: cfg.Timeouts.GlobalSearch,
		QueryTimeout:  cfg.Timeouts.PerQuery,
	})

	handler := flighthttp.NewHandler(searchUC, finder, routes)
	flighthttp.RegisterRoutes(e, handler)

	cleanup := func() {
		if err := routes.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing route database")
		}
		if redisCache != nil {
			if err := redisCache.Close(); err != nil {
				log.Error().Err(err).Msg("Error closing result cache")
			}
		}
	}
	return cleanup, nil
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
