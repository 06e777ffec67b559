package ports

import (
	"context"
	"time"

	"github.com/bloghive/blog-backend/internal/core/domain"
)

// ActivityInput is the DTO handed from services to the activity pipeline.
type ActivityInput struct {
	PostID     string
	ActorID    string
	Kind       domain.ActivityKind
	OccurredAt time.Time
}

// ActivityService persists engagement activity records.
type ActivityService interface {
	Record(ctx context.Context, input ActivityInput) error
}

// ActivityRepository handles activity persistence.
type ActivityRepository interface {
	Insert(ctx context.Context, activity *domain.Activity) error
}

// ActivityDispatcher is the interface services use to enqueue activity
// records without blocking the request path.
type ActivityDispatcher interface {
	Enqueue(input ActivityInput)
}
