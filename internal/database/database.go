// Package database wraps the MongoDB client used by all repositories.
package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DB wraps the MongoDB client and the dashboard database handle
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// Config contains database connection settings
type Config struct {
	URI            string
	Name           string
	ConnectTimeout time.Duration
	MaxPoolSize    uint64
}

// DefaultConfig returns sensible default database configuration
func DefaultConfig(uri, name string) *Config {
	return &Config{
		URI:            uri,
		Name:           name,
		ConnectTimeout: 10 * time.Second,
		MaxPoolSize:    25,
	}
}

// New connects to MongoDB and verifies the connection with a ping
func New(ctx context.Context, cfg *Config) (*DB, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetMaxPoolSize(cfg.MaxPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	log.Printf("[database] Connected to MongoDB (db=%s max_pool=%d)", cfg.Name, cfg.MaxPoolSize)

	return &DB{
		client: client,
		db:     client.Database(cfg.Name),
	}, nil
}

// Close disconnects the MongoDB client
func (db *DB) Close(ctx context.Context) {
	if db.client != nil {
		if err := db.client.Disconnect(ctx); err != nil {
			log.Printf("[database] Disconnect error: %v", err)
			return
		}
		log.Println("[database] Connection closed")
	}
}

// Ping checks database connectivity
func (db *DB) Ping(ctx context.Context) error {
	return db.client.Ping(ctx, readpref.Primary())
}

// Collection returns a handle to a named collection in the dashboard database
func (db *DB) Collection(name string) *mongo.Collection {
	return db.db.Collection(name)
}
