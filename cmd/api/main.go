package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/musicapi-dashboard/backend/internal/api"
	"github.com/musicapi-dashboard/backend/internal/cache"
	"github.com/musicapi-dashboard/backend/internal/config"
	"github.com/musicapi-dashboard/backend/internal/database"
	"github.com/musicapi-dashboard/backend/internal/repository"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log.Printf("[main] Starting Music API Dashboard (env=%s)", cfg.Env)

	if cfg.AdminToken == "" {
		log.Println("[main] WARNING: ADMIN_TOKEN not set, admin routes are unauthenticated")
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to MongoDB
	dbCfg := database.DefaultConfig(cfg.MongoURI, cfg.MongoDBName)
	db, err := database.New(ctx, dbCfg)
	if err != nil {
		log.Fatalf("[main] Failed to connect to database: %v", err)
	}
	defer db.Close(context.Background())

	// Key lookups must stay O(1)
	if err := repository.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Printf("[main] Failed to ensure indexes: %v", err)
	}

	// Connect to Redis if configured
	var redisCache *cache.Redis
	if cfg.RedisURL != "" {
		redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("[main] Failed to connect to Redis: %v", err)
		}
		defer redisCache.Close()
	} else {
		log.Println("[main] Redis not configured, caching and rate limiting disabled")
	}

	// Create router
	router := api.NewRouter(cfg, db, redisCache)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("[main] Server listening on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[main] Server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[main] Shutting down server...")

	// Give outstanding requests time to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[main] Server forced to shutdown: %v", err)
	}

	log.Println("[main] Server stopped")
}
