package ports

import (
	"context"

	"sge-logistics/internal/features/blog/domain"
)

// BlogService defines the primary port for blog operations.
type BlogService interface {
	ListPublished(ctx context.Context) ([]domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	CreatePost(ctx context.Context, post *domain.BlogPost) error
	UpdatePost(ctx context.Context, post *domain.BlogPost) error
	DeletePost(ctx context.Context, slug string) error
}

// BlogRepository defines the secondary port for blog storage.
type BlogRepository interface {
	ListPublished(ctx context.Context, limit int) ([]domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	Create(ctx context.Context, post *domain.BlogPost) error
	Update(ctx context.Context, post *domain.BlogPost) error
	Delete(ctx context.Context, slug string) error
	SlugExists(ctx context.Context, slug string) (bool, error)
}
