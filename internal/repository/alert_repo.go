package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/musicapi-dashboard/backend/internal/database"
	"github.com/musicapi-dashboard/backend/internal/models"
)

// AlertRepository handles the singleton system alert document
type AlertRepository struct {
	col *mongo.Collection
}

// NewAlertRepository creates a new alert repository
func NewAlertRepository(db *database.DB) *AlertRepository {
	return &AlertRepository{col: db.Collection(models.AlertsCollection)}
}

// Get retrieves the singleton alert. A missing document returns
// (nil, nil): no alert has ever been set.
func (r *AlertRepository) Get(ctx context.Context) (*models.Alert, error) {
	var alert models.Alert
	err := r.col.FindOne(ctx, bson.M{"id": models.AlertID}).Decode(&alert)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}
	return &alert, nil
}

// Set creates or replaces the singleton alert. Replaying the same call
// yields identical stored state.
func (r *AlertRepository) Set(ctx context.Context, message string, active bool) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"id": models.AlertID},
		bson.M{"$set": bson.M{"message": message, "active": active}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert alert: %w", err)
	}
	return nil
}
