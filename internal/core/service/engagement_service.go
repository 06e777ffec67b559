package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloghive/blog-backend/internal/api/metrics"
	"github.com/bloghive/blog-backend/internal/core/domain"
	"github.com/bloghive/blog-backend/internal/core/ports"
)

// LikeCountCache abstracts the per-post like counter cache (Redis).
type LikeCountCache interface {
	Get(ctx context.Context, postID string) (int64, bool, error)
	Set(ctx context.Context, postID string, count int64) error
	Invalidate(ctx context.Context, postID string) error
}

type engagementService struct {
	posts    ports.PostRepository
	repo     ports.EngagementRepository
	cache    LikeCountCache
	activity ports.ActivityDispatcher
	log      zerolog.Logger
}

// NewEngagementService returns an EngagementService implementation.
func NewEngagementService(
	posts ports.PostRepository,
	repo ports.EngagementRepository,
	cache LikeCountCache,
	activity ports.ActivityDispatcher,
	log zerolog.Logger,
) ports.EngagementService {
	return &engagementService{
		posts:    posts,
		repo:     repo,
		cache:    cache,
		activity: activity,
		log:      log,
	}
}

// AddLike registers a like for (postID, userID). A repeat like from the same
// user is an idempotent no-op: the unique index on the pair rejects the
// second insert and the result reports AlreadyLiked instead of failing.
func (s *engagementService) AddLike(ctx context.Context, postID, userID string) (*ports.LikeResult, error) {
	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}

	like := &domain.Like{
		PostID:    postID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	result := &ports.LikeResult{PostID: postID, UserID: userID}
	if err := s.repo.InsertLike(ctx, like); err != nil {
		if !errors.Is(err, domain.ErrAlreadyLiked) {
			return nil, fmt.Errorf("add like: %w", err)
		}
		result.AlreadyLiked = true
		metrics.LikesTotal.WithLabelValues("duplicate").Inc()
		s.log.Debug().Str("post_id", postID).Str("user_id", userID).Msg("duplicate like ignored")
		return result, nil
	}

	if err := s.cache.Invalidate(ctx, postID); err != nil {
		s.log.Warn().Err(err).Str("post_id", postID).Msg("failed to invalidate like count cache")
	}

	metrics.LikesTotal.WithLabelValues("created").Inc()
	s.record(ports.ActivityInput{
		PostID:     postID,
		ActorID:    userID,
		Kind:       domain.ActivityLike,
		OccurredAt: like.CreatedAt,
	})

	return result, nil
}

// CountLikes returns the number of likes on a post, served from the cache
// when warm. Cache failures fall through to the store.
func (s *engagementService) CountLikes(ctx context.Context, postID string) (int64, error) {
	if err := s.requirePost(ctx, postID); err != nil {
		return 0, err
	}

	if count, ok, err := s.cache.Get(ctx, postID); err != nil {
		s.log.Warn().Err(err).Str("post_id", postID).Msg("like count cache read failed")
	} else if ok {
		return count, nil
	}

	count, err := s.repo.CountLikesByPost(ctx, postID)
	if err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}

	if err := s.cache.Set(ctx, postID, count); err != nil {
		s.log.Warn().Err(err).Str("post_id", postID).Msg("like count cache write failed")
	}
	return count, nil
}

// ListLikeUsers returns the ids of users who liked a post. Zero likes is an
// empty list, not an error.
func (s *engagementService) ListLikeUsers(ctx context.Context, postID string) ([]string, error) {
	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}

	likes, err := s.repo.ListLikesByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list like users: %w", err)
	}

	users := make([]string, 0, len(likes))
	for _, l := range likes {
		users = append(users, l.UserID)
	}
	return users, nil
}

func (s *engagementService) TotalLikeCount(ctx context.Context) (int64, error) {
	return s.repo.CountAllLikes(ctx)
}

// AddComment attaches a comment to an existing post.
func (s *engagementService) AddComment(ctx context.Context, postID, userID, content string) (*domain.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrEmptyComment
	}
	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		PostID:    postID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.InsertComment(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}

	metrics.CommentsTotal.Inc()
	s.record(ports.ActivityInput{
		PostID:     postID,
		ActorID:    userID,
		Kind:       domain.ActivityComment,
		OccurredAt: created.CreatedAt,
	})

	return created, nil
}

func (s *engagementService) ListComments(ctx context.Context, postID string) ([]domain.Comment, error) {
	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}
	comments, err := s.repo.ListCommentsByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (s *engagementService) TotalCommentCount(ctx context.Context) (int64, error) {
	return s.repo.CountAllComments(ctx)
}

// requirePost resolves the parent post by primary key. Malformed ids are
// reported by the repository as ErrPostNotFound, so probing with garbage
// ids looks identical to probing with absent ones.
func (s *engagementService) requirePost(ctx context.Context, postID string) error {
	ok, err := s.posts.Exists(ctx, postID)
	if err != nil {
		return fmt.Errorf("check post: %w", err)
	}
	if !ok {
		return domain.ErrPostNotFound
	}
	return nil
}

func (s *engagementService) record(in ports.ActivityInput) {
	if s.activity == nil {
		return
	}
	s.activity.Enqueue(in)
}
