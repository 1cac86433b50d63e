package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anonto42/bluo/backend/internal/clock"
	"github.com/anonto42/bluo/backend/internal/repositories"
	"github.com/anonto42/bluo/backend/internal/router"
	"github.com/anonto42/bluo/backend/internal/seed"
	"github.com/anonto42/bluo/backend/pkg/config"
	"github.com/anonto42/bluo/backend/pkg/logger"
	"github.com/anonto42/bluo/backend/pkg/payments"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(cfg.Env, cfg.LogLevel)
	log.Info().Str("env", cfg.Env).Msg("Bluo server starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clk := clock.NewReal()
	store := repositories.NewMemoryStore(clk)
	if cfg.SeedData {
		if err := seed.Load(ctx, store, clk); err != nil {
			log.Fatal().Err(err).Msg("Failed to load seed data")
		}
		log.Info().Msg("Seed data loaded")
	}

	// Payments are optional; without a key the checkout routes answer 503.
	var checkout payments.CheckoutProvider
	stripeClient, err := payments.NewStripeClient(cfg.StripeSecretKey, cfg.StripePrices, cfg.ClientURL)
	if err != nil {
		log.Warn().Err(err).Msg("Payments disabled")
	} else {
		checkout = stripeClient
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	config.SetupMiddleware(e, cfg)
	router.SetupRoutes(e, router.Dependencies{
		Store:       store,
		Clock:       clk,
		Checkout:    checkout,
		AIRateLimit: cfg.AIRateLimit,
		AIRateBurst: cfg.AIRateBurst,
	})

	var metricsServer *http.Server
	if cfg.MetricsEnabled() {
		metricsServer = startMetricsServer(cfg.MetricsPort)
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Bluo server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Metrics server shutdown failed")
		}
	}
	log.Info().Msg("Server stopped")
}

func startMetricsServer(port string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info().Str("port", port).Msg("Metrics server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Metrics server failed")
		}
	}()
	return srv
}
