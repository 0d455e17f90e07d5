package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/musicapi-dashboard/backend/internal/api/handlers"
	"github.com/musicapi-dashboard/backend/internal/cache"
	"github.com/musicapi-dashboard/backend/internal/config"
	"github.com/musicapi-dashboard/backend/internal/database"
	"github.com/musicapi-dashboard/backend/internal/middleware"
	"github.com/musicapi-dashboard/backend/internal/probe"
	"github.com/musicapi-dashboard/backend/internal/ratelimit"
	"github.com/musicapi-dashboard/backend/internal/repository"
)

// NewRouter creates and configures the main router. redisCache may be
// nil; caching and rate limiting then disable themselves.
func NewRouter(cfg *config.Config, db *database.DB, redisCache *cache.Redis) *chi.Mux {
	r := chi.NewRouter()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	alertRepo := repository.NewAlertRepository(db)

	// Outbound probes
	catboxProber := probe.NewCatboxProber(cfg.CatboxURL, cfg.CatboxTimeout)
	monitorProber := probe.NewMonitorProber(cfg.MonitorURL, cfg.MonitorTimeout)

	// Global stats cache and per-IP limiter
	statsCache := cache.NewStatsCache(redisCache, cfg.StatsCacheTTL)
	limiter := ratelimit.New(redisCache, cfg.RateLimitPerMinute)

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Timing)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORSWithOrigins(cfg.CORSOrigins))
	r.Use(middleware.RateLimit(limiter))

	// Initialize handlers
	healthHandler := handlers.NewHealthChecker(db, redisCache)
	statsHandler := handlers.NewStatsHandler(userRepo, mediaRepo, alertRepo, statsCache, catboxProber)
	userHandler := handlers.NewUserHandler(userRepo)
	adminHandler := handlers.NewAdminHandler(alertRepo, cfg.AdminToken)
	monitorHandler := handlers.NewMonitorHandler(monitorProber)

	// Dashboard shell
	r.Get("/", handlers.Index)

	// Health endpoints
	r.Get("/health", healthHandler.Health)
	r.Get("/health/live", handlers.LivenessProbe)
	r.Get("/health/ready", healthHandler.ReadinessProbe)

	// API
	r.Route("/api", func(r chi.Router) {
		r.Get("/user/stats", statsHandler.GetStats)
		r.Get("/user/toggle", userHandler.Toggle)
		r.Post("/user/update_profile", userHandler.UpdateProfile)

		r.Get("/monitor/external", monitorHandler.External)

		r.Route("/admin", func(r chi.Router) {
			r.Use(adminHandler.RequireToken)
			r.Post("/set-alert", adminHandler.SetAlert)
		})
	})

	return r
}
