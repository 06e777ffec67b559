package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bloghive/blog-backend/internal/core/domain"
	"github.com/bloghive/blog-backend/internal/core/ports"
)

const activitiesCollection = "activities"

// ActivityRepository implements ports.ActivityRepository using MongoDB.
type ActivityRepository struct {
	coll *mongo.Collection
}

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(db *mongo.Database) ports.ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activitiesCollection)}
}

// Insert persists one activity record to the audit trail.
func (r *ActivityRepository) Insert(ctx context.Context, activity *domain.Activity) error {
	doc := bson.M{
		"post_id":      activity.PostID,
		"actor_id":     activity.ActorID,
		"kind":         string(activity.Kind),
		"occurred_at":  activity.OccurredAt.UTC(),
		"processed_at": time.Now().UTC(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}
