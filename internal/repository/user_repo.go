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

// ErrUserNotFound is returned when no record matches the given API key
var ErrUserNotFound = errors.New("user not found")

// UserRepository handles api_users collection operations
type UserRepository struct {
	col *mongo.Collection
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{col: db.Collection(models.UsersCollection)}
}

// userRecord mirrors the stored document. Optional fields are pointers so
// that records written before a field existed still decode with the
// documented defaults.
type userRecord struct {
	APIKey     string  `bson:"api_key"`
	Username   string  `bson:"username,omitempty"`
	TotalUsage int64   `bson:"total_usage"`
	UsedToday  int64   `bson:"used_today"`
	DailyLimit *int64  `bson:"daily_limit"`
	Active     *bool   `bson:"active"`
	Plan       *string `bson:"plan"`
}

func (rec *userRecord) toModel() *models.APIUser {
	user := &models.APIUser{
		APIKey:     rec.APIKey,
		Username:   rec.Username,
		TotalUsage: rec.TotalUsage,
		UsedToday:  rec.UsedToday,
		DailyLimit: models.DefaultDailyLimit,
		Active:     true,
		Plan:       models.DefaultPlan,
	}
	if rec.DailyLimit != nil {
		user.DailyLimit = *rec.DailyLimit
	}
	if rec.Active != nil {
		user.Active = *rec.Active
	}
	if rec.Plan != nil && *rec.Plan != "" {
		user.Plan = *rec.Plan
	}
	return user
}

// EnsureIndexes creates the unique api_key index used for O(1) key lookups
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "api_key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create api_key index: %w", err)
	}
	return nil
}

// GetByKey retrieves a user by API key
func (r *UserRepository) GetByKey(ctx context.Context, key string) (*models.APIUser, error) {
	var rec userRecord
	err := r.col.FindOne(ctx, bson.M{"api_key": key}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by key: %w", err)
	}
	return rec.toModel(), nil
}

// SetActive sets the active flag of the user identified by key.
// The update touches a single document and is idempotent.
func (r *UserRepository) SetActive(ctx context.Context, key string, active bool) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"api_key": key},
		bson.M{"$set": bson.M{"active": active}},
	)
	if err != nil {
		return fmt.Errorf("failed to set active flag: %w", err)
	}
	return nil
}

// UpdateUsername sets the display name of the user identified by key.
// A key that matches no record is a silent no-op at the store level.
func (r *UserRepository) UpdateUsername(ctx context.Context, key, username string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"api_key": key},
		bson.M{"$set": bson.M{"username": username}},
	)
	if err != nil {
		return fmt.Errorf("failed to update username: %w", err)
	}
	return nil
}

// TotalUsage sums total_usage across all user records. An empty
// collection yields 0.
func (r *UserRepository) TotalUsage(ctx context.Context) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$total_usage"},
		}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate total usage: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode total usage: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

// TopUsers returns up to limit users ordered by total_usage descending.
// Ties keep the store's natural order.
func (r *UserRepository) TopUsers(ctx context.Context, limit int64) ([]*models.APIUser, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "total_usage", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query top users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []*models.APIUser
	for cursor.Next(ctx) {
		var rec userRecord
		if err := cursor.Decode(&rec); err != nil {
			return nil, fmt.Errorf("failed to decode user record: %w", err)
		}
		users = append(users, rec.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate top users: %w", err)
	}

	return users, nil
}
