package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/musicapi-dashboard/backend/internal/database"
	"github.com/musicapi-dashboard/backend/internal/models"
)

// MediaRepository reads the cached video/song metadata collection.
// The documents themselves are opaque to the dashboard; only the
// collection cardinality is consumed.
type MediaRepository struct {
	col *mongo.Collection
}

// NewMediaRepository creates a new media repository
func NewMediaRepository(db *database.DB) *MediaRepository {
	return &MediaRepository{col: db.Collection(models.VideosCollection)}
}

// SongCount returns the estimated number of cached songs. The estimate
// comes from collection metadata and may lag behind recent writes.
func (r *MediaRepository) SongCount(ctx context.Context) (int64, error) {
	count, err := r.col.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count songs: %w", err)
	}
	return count, nil
}
