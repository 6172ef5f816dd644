package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/wisebid/n2b/internal/clientdata"
	"github.com/wisebid/n2b/internal/clients/g2b"
	"github.com/wisebid/n2b/internal/clients/pricing"
	"github.com/wisebid/n2b/internal/config"
	"github.com/wisebid/n2b/internal/database"
	"github.com/wisebid/n2b/internal/modules/analysis"
	"github.com/wisebid/n2b/internal/modules/awards"
	"github.com/wisebid/n2b/internal/modules/costing"
	"github.com/wisebid/n2b/internal/modules/decision"
	"github.com/wisebid/n2b/internal/modules/matching"
	"github.com/wisebid/n2b/internal/modules/prices"
	"github.com/wisebid/n2b/internal/ratelimit"
	"github.com/wisebid/n2b/internal/scheduler"
	"github.com/wisebid/n2b/internal/server"
	"github.com/wisebid/n2b/pkg/logger"
)

func main() {
	// Load configuration first so the logger can honor the configured level
	cfg, err := config.Load()
	if err != nil {
		// Logger is not up yet
		panic(err)
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().Msg("Starting bid analysis server")

	// Cache database for external API responses
	cacheDB, err := database.New(database.Config{
		Path:    filepath.Join(cfg.DataDir, "cache.db"),
		Profile: database.ProfileCache,
		Name:    "cache",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize cache database")
	}
	defer cacheDB.Close()

	if err := clientdata.InitSchema(cacheDB.Conn()); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize cache schema")
	}
	cacheRepo := clientdata.NewRepository(cacheDB.Conn())

	// External API clients
	pricingClient := pricing.NewClient(cfg.PublicDataAPIKey, cfg.ClientTimeout, cacheRepo, log)
	g2bClient := g2b.NewClient(cfg.PublicDataAPIKey, cfg.ClientTimeout, cacheRepo, log)

	// Rate limiting
	limiter := ratelimit.NewLimiter(ratelimit.NewDailyCounter(), cfg.PremiumKey, log)

	// Background jobs
	sched := scheduler.New(log)
	if err := sched.AddJob("@daily", clientdata.NewCleanupJob(cacheRepo, log)); err != nil {
		log.Fatal().Err(err).Msg("Failed to register cleanup job")
	}
	sched.Start()
	defer sched.Stop()

	// HTTP server
	srv := server.New(server.Config{
		Port:     cfg.Port,
		Log:      log,
		Config:   cfg,
		CacheDB:  cacheDB,
		Limiter:  limiter,
		Costing:  costing.NewHandlers(log),
		Decision: decision.NewHandlers(log),
		Matching: matching.NewHandlers(g2bClient, log),
		Prices:   prices.NewHandlers(prices.NewService(pricingClient, log), log),
		Awards:   awards.NewHandlers(awards.NewService(g2bClient, log), log),
		Analysis: analysis.NewHandlers(analysis.NewService(log), log),
	})

	// Start server in goroutine
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
