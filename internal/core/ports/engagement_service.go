package ports

import (
	"context"

	"github.com/bloghive/blog-backend/internal/core/domain"
)

// LikeResult is returned by AddLike.
type LikeResult struct {
	PostID string
	UserID string
	// AlreadyLiked is true when the (post, user) pair existed before the
	// call; the operation is an idempotent no-op in that case.
	AlreadyLiked bool
}

// EngagementService covers likes and comments, both gated on post existence.
type EngagementService interface {
	AddLike(ctx context.Context, postID, userID string) (*LikeResult, error)
	CountLikes(ctx context.Context, postID string) (int64, error)
	ListLikeUsers(ctx context.Context, postID string) ([]string, error)
	TotalLikeCount(ctx context.Context) (int64, error)

	AddComment(ctx context.Context, postID, userID, content string) (*domain.Comment, error)
	ListComments(ctx context.Context, postID string) ([]domain.Comment, error)
	TotalCommentCount(ctx context.Context) (int64, error)
}
