// Package server wires the HTTP surface: router, middleware and routes.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/wisebid/n2b/internal/config"
	"github.com/wisebid/n2b/internal/database"
	"github.com/wisebid/n2b/internal/modules/analysis"
	"github.com/wisebid/n2b/internal/modules/awards"
	"github.com/wisebid/n2b/internal/modules/costing"
	"github.com/wisebid/n2b/internal/modules/decision"
	"github.com/wisebid/n2b/internal/modules/matching"
	"github.com/wisebid/n2b/internal/modules/prices"
	"github.com/wisebid/n2b/internal/ratelimit"
)

// Config holds server configuration and the handler set.
type Config struct {
	Port    int
	Log     zerolog.Logger
	Config  *config.Config
	CacheDB *database.DB

	Limiter  *ratelimit.Limiter
	Costing  *costing.Handlers
	Decision *decision.Handlers
	Matching *matching.Handlers
	Prices   *prices.Handlers
	Awards   *awards.Handlers
	Analysis *analysis.Handlers
}

// Server represents the HTTP server
type Server struct {
	router *chi.Mux
	server *http.Server
	log    zerolog.Logger
	cfg    Config
	system *SystemHandlers
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router: chi.NewRouter(),
		log:    cfg.Log.With().Str("component", "server").Logger(),
		cfg:    cfg,
		system: NewSystemHandlers(cfg.Log, cfg.CacheDB),
	}

	s.setupMiddleware(cfg.Config.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	// Recovery from panics
	s.router.Use(middleware.Recoverer)

	// Request ID
	s.router.Use(middleware.RequestID)

	// Real IP
	s.router.Use(middleware.RealIP)

	// Logging
	s.router.Use(s.loggingMiddleware)

	// Timeout
	s.router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", ratelimit.PremiumHeader},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Compress responses
	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/", s.handleBanner)
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		// Reference tables and quick lookups are not counted against the
		// daily quota.
		r.Get("/cost-ratios", s.cfg.Costing.HandleCostRatios)
		r.Get("/cost-ratio/{workType}", s.cfg.Costing.HandleCostRatio)
		r.Get("/quick-estimate", s.cfg.Costing.HandleQuickEstimate)
		r.Get("/quick-decision", s.cfg.Decision.HandleQuickDecision)
		r.Get("/full-analysis", s.cfg.Analysis.HandleFullAnalysis)

		r.Get("/profiles", s.cfg.Matching.HandleGetProfiles)
		r.Get("/profiles/{name}", s.cfg.Matching.HandleGetProfileByName)

		r.Get("/usage", s.cfg.Limiter.HandleUsage)

		// Quota-counted analysis endpoints.
		r.Group(func(r chi.Router) {
			r.Use(s.cfg.Limiter.Limit("cost"))
			r.Post("/cost-estimate", s.cfg.Costing.HandleCostEstimate)
			r.Post("/n2b-decision", s.cfg.Decision.HandleDecision)
			r.Post("/price-search", s.cfg.Prices.HandlePriceSearch)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.cfg.Limiter.Limit("bid"))
			r.Post("/bid-match", s.cfg.Matching.HandleBidMatch)
			r.Get("/award-stats", s.cfg.Awards.HandleAwardStats)
		})

		// System
		r.Route("/system", func(r chi.Router) {
			r.Get("/status", s.system.HandleSystemStatus)
		})
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Int("port", s.cfg.Port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
