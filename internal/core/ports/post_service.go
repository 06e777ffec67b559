package ports

import (
	"context"

	"github.com/bloghive/blog-backend/internal/core/domain"
)

// CreatePostInput carries all data needed to create a new post.
type CreatePostInput struct {
	Title    string
	Content  string
	Author   string
	AuthorID string
}

// UpdatePostInput carries a partial update. Nil fields are left untouched.
type UpdatePostInput struct {
	PostID  string
	Title   *string
	Content *string
	Author  *string
	// ActorID and ActorRole enforce ownership: only the post author or an
	// admin may update or delete a post.
	ActorID   string
	ActorRole string
}

// DeletePostInput identifies the post to remove and the acting user.
type DeletePostInput struct {
	PostID    string
	ActorID   string
	ActorRole string
}

// PostService defines use-case operations for blog posts.
type PostService interface {
	CreatePost(ctx context.Context, input CreatePostInput) (*domain.Post, error)
	GetPost(ctx context.Context, id string) (*domain.Post, error)
	ListPosts(ctx context.Context) ([]domain.Post, error)
	UpdatePost(ctx context.Context, input UpdatePostInput) (*domain.Post, error)
	DeletePost(ctx context.Context, input DeletePostInput) error
}
