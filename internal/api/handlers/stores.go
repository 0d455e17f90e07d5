package handlers

import (
	"context"

	"github.com/musicapi-dashboard/backend/internal/models"
)

// UserStore is the slice of the user repository the handlers consume.
type UserStore interface {
	GetByKey(ctx context.Context, key string) (*models.APIUser, error)
	SetActive(ctx context.Context, key string, active bool) error
	UpdateUsername(ctx context.Context, key, username string) error
	TotalUsage(ctx context.Context) (int64, error)
	TopUsers(ctx context.Context, limit int64) ([]*models.APIUser, error)
}

// MediaStore exposes the cached-song cardinality.
type MediaStore interface {
	SongCount(ctx context.Context) (int64, error)
}

// AlertStore manages the singleton system alert.
type AlertStore interface {
	Get(ctx context.Context) (*models.Alert, error)
	Set(ctx context.Context, message string, active bool) error
}
