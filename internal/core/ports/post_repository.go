package ports

import (
	"context"

	"github.com/bloghive/blog-backend/internal/core/domain"
)

// PostRepository defines the interface for post persistence. Implementations
// treat a malformed id the same as an absent one: domain.ErrPostNotFound.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}
