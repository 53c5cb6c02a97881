package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"productsearch/internal/config"
	"productsearch/internal/logging"
	"productsearch/internal/mapping"
	"productsearch/internal/search"
	"productsearch/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"search_enabled", cfg.Search.Enabled(),
		"search_index", cfg.Search.Index,
		"apparel_index", cfg.ApparelSearch.Index,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	// Field mapping registry: built-in presets, optionally merged with a
	// YAML file of named mappings.
	mappings := mapping.NewRegistry()
	if cfg.Mappings.File != "" {
		mappings, err = mapping.LoadRegistry(cfg.Mappings.File)
		if err != nil {
			slog.Error("failed to load mapping registry", "file", cfg.Mappings.File, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("field mappings registered", "names", mappings.Names())

	// Search backends. Without endpoint and key the service runs with nil
	// backends and every search degrades to empty results.
	var products, apparel search.Backend
	if cfg.Search.Enabled() {
		products = search.NewAzureClient(cfg.Search.Endpoint, cfg.Search.APIKey, cfg.Search.Index)
		apparel = search.NewAzureClient(cfg.Search.Endpoint, cfg.Search.APIKey, cfg.ApparelSearch.Index)
		slog.Info("search backends configured", "endpoint", cfg.Search.Endpoint)
	} else {
		slog.Warn("no search backend configured, search endpoints will return empty results")
	}

	service := search.NewService(products, apparel)
	server := web.NewServer(cfg, service, mappings)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
