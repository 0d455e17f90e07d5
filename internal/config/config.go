// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server settings
	Port string
	Env  string

	// MongoDB settings
	MongoURI    string
	MongoDBName string

	// Redis settings (optional; empty disables caching and rate limiting)
	RedisURL string

	// Admin shared-secret for /api/admin routes. Empty leaves them open.
	AdminToken string

	// CORS
	CORSOrigins []string

	// Rate limiting (requests per minute per IP; 0 disables)
	RateLimitPerMinute int

	// How long global aggregates may be served from cache
	StatsCacheTTL time.Duration

	// Outbound probe targets
	CatboxURL  string
	MonitorURL string

	// Outbound probe timeouts
	CatboxTimeout  time.Duration
	MonitorTimeout time.Duration
}

// Load returns a new Config struct populated from environment variables.
// A .env file in the working directory is read first, if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		MongoURI:           getEnv("MONGO_DB_URI", "mongodb://localhost:27017"),
		MongoDBName:        getEnv("MONGO_DB_NAME", "MusicAPI_DB12"),
		RedisURL:           getEnv("REDIS_URL", ""),
		AdminToken:         getEnv("ADMIN_TOKEN", ""),
		CORSOrigins:        getEnvSlice("CORS_ORIGINS", []string{"*"}),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		StatsCacheTTL:      getEnvDuration("STATS_CACHE_TTL", 15*time.Second),
		CatboxURL:          getEnv("CATBOX_URL", "https://files.catbox.moe"),
		MonitorURL:         getEnv("MONITOR_URL", "https://apis-samir.vercel.app/song?query=test"),
		CatboxTimeout:      getEnvDuration("CATBOX_TIMEOUT", 2*time.Second),
		MonitorTimeout:     getEnvDuration("MONITOR_TIMEOUT", 10*time.Second),
	}
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration retrieves a duration environment variable or returns a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvSlice retrieves a comma-separated environment variable as a slice.
func getEnvSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}
