package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloghive/blog-backend/internal/api/metrics"
	"github.com/bloghive/blog-backend/internal/core/domain"
	"github.com/bloghive/blog-backend/internal/core/ports"
)

type PostService struct {
	repo       ports.PostRepository
	engagement ports.EngagementRepository
	logger     zerolog.Logger
}

func NewPostService(repo ports.PostRepository, engagement ports.EngagementRepository, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, engagement: engagement, logger: logger}
}

// CreatePost stores a new post authored by the authenticated user.
func (s *PostService) CreatePost(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	now := time.Now().UTC()
	post := &domain.Post{
		Title:     input.Title,
		Content:   input.Content,
		Author:    input.Author,
		AuthorID:  input.AuthorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create post")
		return nil, err
	}

	metrics.PostsCreatedTotal.Inc()
	s.logger.Info().Str("post_id", created.ID).Str("author_id", input.AuthorID).Msg("post created")
	return created, nil
}

func (s *PostService) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PostService) ListPosts(ctx context.Context) ([]domain.Post, error) {
	return s.repo.List(ctx)
}

// UpdatePost applies a partial update. Only the author or an admin may
// modify a post.
func (s *PostService) UpdatePost(ctx context.Context, input ports.UpdatePostInput) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, input.PostID)
	if err != nil {
		return nil, err
	}
	if input.ActorRole != domain.RoleAdmin && post.AuthorID != input.ActorID {
		return nil, domain.ErrForbidden
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Author != nil {
		post.Author = *input.Author
	}
	post.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, post); err != nil {
		s.logger.Error().Err(err).Str("post_id", input.PostID).Msg("failed to update post")
		return nil, err
	}
	return post, nil
}

// DeletePost removes the post and cascades to its likes and comments so no
// orphaned engagement records survive.
func (s *PostService) DeletePost(ctx context.Context, input ports.DeletePostInput) error {
	post, err := s.repo.FindByID(ctx, input.PostID)
	if err != nil {
		return err
	}
	if input.ActorRole != domain.RoleAdmin && post.AuthorID != input.ActorID {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, input.PostID); err != nil {
		return err
	}

	if err := s.engagement.DeleteByPost(ctx, input.PostID); err != nil {
		// The post itself is gone; orphan cleanup failure is logged, not
		// surfaced.
		s.logger.Warn().Err(err).Str("post_id", input.PostID).Msg("failed to cascade engagement delete")
	}

	s.logger.Info().Str("post_id", input.PostID).Str("actor_id", input.ActorID).Msg("post deleted")
	return nil
}
