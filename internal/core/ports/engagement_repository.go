package ports

import (
	"context"

	"github.com/bloghive/blog-backend/internal/core/domain"
)

// EngagementRepository handles like and comment persistence.
type EngagementRepository interface {
	// InsertLike adds a like record. A duplicate (post_id, user_id) pair
	// returns domain.ErrAlreadyLiked; the unique index makes the
	// check-and-insert atomic under concurrent calls.
	InsertLike(ctx context.Context, like *domain.Like) error
	CountLikesByPost(ctx context.Context, postID string) (int64, error)
	ListLikesByPost(ctx context.Context, postID string) ([]domain.Like, error)
	CountAllLikes(ctx context.Context) (int64, error)

	InsertComment(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	// ListCommentsByPost returns comments ordered by creation time ascending.
	ListCommentsByPost(ctx context.Context, postID string) ([]domain.Comment, error)
	CountAllComments(ctx context.Context) (int64, error)

	// DeleteByPost removes all likes and comments attached to a post.
	// Called when the parent post is deleted.
	DeleteByPost(ctx context.Context, postID string) error
}
