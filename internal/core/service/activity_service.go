package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bloghive/blog-backend/internal/core/domain"
	"github.com/bloghive/blog-backend/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService implementation.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Record persists one engagement activity entry.
func (s *activityService) Record(ctx context.Context, in ports.ActivityInput) error {
	activity := &domain.Activity{
		PostID:     in.PostID,
		ActorID:    in.ActorID,
		Kind:       in.Kind,
		OccurredAt: in.OccurredAt,
	}

	if err := s.repo.Insert(ctx, activity); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}

	s.log.Debug().
		Str("post_id", in.PostID).
		Str("actor_id", in.ActorID).
		Str("kind", string(in.Kind)).
		Msg("activity recorded")

	return nil
}
