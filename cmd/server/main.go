package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	httpapi "tool-rental-backend/internal/api/http"
	"tool-rental-backend/internal/bootstrap"
	"tool-rental-backend/internal/config"
	"tool-rental-backend/internal/logger"
	"tool-rental-backend/internal/metrics"
	"tool-rental-backend/internal/pricing"
	"tool-rental-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "", "Path to configuration file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, relying on environment")
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting tool rental checkout server...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Pricing configuration", "charge_window", cfg.ChargeWindow(), "catalog_source", cfg.Catalog.Source)

	// Load the catalog once; it is read-only from here on
	catalog, err := bootstrap.LoadCatalog(context.Background(), cfg)
	if err != nil {
		logger.Error("Failed to load tool catalog", "error", err)
		log.Fatalf("Failed to load tool catalog: %v", err)
	}
	logger.Info("Tool catalog loaded", "tools", len(catalog.List()))

	// Initialize Services
	checkoutMetrics := metrics.NewCheckouts(catalog)
	checkoutSvc := service.NewCheckoutService(catalog, pricing.NewCalculator(cfg.ChargeWindow()), checkoutMetrics)
	toolSvc := service.NewToolService(catalog)

	// Set up HTTP server
	router := mux.NewRouter()
	httpapi.RegisterCheckoutRoutes(router, httpapi.NewCheckoutHandler(checkoutSvc, toolSvc), checkoutMetrics.Handler())

	srv := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
