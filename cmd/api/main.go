package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"phishguard/internal/api"
	"phishguard/internal/api/handlers"
	"phishguard/internal/config"
	"phishguard/internal/domain/services/engine"
	"phishguard/internal/domain/services/explain"
	"phishguard/internal/infrastructure/cache"
	"phishguard/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var log *logger.Logger
	if cfg.App.Environment == "production" {
		log = logger.NewProduction()
	} else {
		log = logger.NewDevelopment()
	}
	logger.SetGlobal(log)

	log.Info().
		Str("app", cfg.App.Name).
		Str("env", cfg.App.Environment).
		Str("version", cfg.App.Version).
		Msg("starting PhishGuard")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis is optional: without it the service runs uncached and unlimited
	var redisCache *cache.RedisCache
	if cfg.Redis.Enabled {
		redisCache, err = cache.NewRedis(ctx, cfg.Redis, log)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to Redis, continuing without cache and rate limiting")
			redisCache = nil
		} else {
			defer redisCache.Close()
		}
	}

	// Initialize services
	eng := engine.New(log)
	explainer := explain.NewClient(explain.Config{
		APIKey:          cfg.Explain.APIKey,
		APIURL:          cfg.Explain.APIURL,
		Temperature:     cfg.Explain.Temperature,
		MaxOutputTokens: cfg.Explain.MaxOutputTokens,
		Timeout:         cfg.Explain.Timeout,
	}, log)

	if cfg.Explain.APIKey == "" {
		log.Warn().Msg("no explanation API key configured, using local fallback explanations")
	}

	// Initialize handlers
	h := handlers.NewHandlers(handlers.Dependencies{
		Config:    cfg,
		Engine:    eng,
		Explainer: explainer,
		Cache:     redisCache,
		Logger:    log,
	})

	// Create router
	router := api.NewRouter(cfg, h, redisCache, log)

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().
			Str("addr", httpServer.Addr).
			Msg("starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	log.Info().Str("signal", sig.String()).Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	log.Info().Msg("shutdown complete")
}
