package adapters

import (
	"context"
	"errors"
	"fmt"

	"sge-logistics/internal/features/blog/domain"

	"gorm.io/gorm"
)

// PostgresBlogRepository implements ports.BlogRepository on GORM.
type PostgresBlogRepository struct {
	db *gorm.DB
}

// NewPostgresBlogRepository creates a new PostgresBlogRepository.
func NewPostgresBlogRepository(db *gorm.DB) *PostgresBlogRepository {
	return &PostgresBlogRepository{db: db}
}

// ListPublished returns published posts, newest first, up to limit.
func (r *PostgresBlogRepository) ListPublished(ctx context.Context, limit int) ([]domain.BlogPost, error) {
	var posts []domain.BlogPost
	q := r.db.WithContext(ctx).
		Where("published = ?", true).
		Order("published_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	return posts, nil
}

// GetBySlug returns a post by slug.
func (r *PostgresBlogRepository) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	var post domain.BlogPost
	err := r.db.WithContext(ctx).First(&post, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to query blog post: %w", err)
	}
	return &post, nil
}

// Create inserts a post.
func (r *PostgresBlogRepository) Create(ctx context.Context, post *domain.BlogPost) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("failed to insert blog post: %w", err)
	}
	return nil
}

// Update saves all fields of an existing post.
func (r *PostgresBlogRepository) Update(ctx context.Context, post *domain.BlogPost) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return fmt.Errorf("failed to update blog post: %w", err)
	}
	return nil
}

// Delete removes a post by slug.
func (r *PostgresBlogRepository) Delete(ctx context.Context, slug string) error {
	res := r.db.WithContext(ctx).Delete(&domain.BlogPost{}, "slug = ?", slug)
	if res.Error != nil {
		return fmt.Errorf("failed to delete blog post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

// SlugExists reports whether a slug is already taken.
func (r *PostgresBlogRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.BlogPost{}).
		Where("slug = ?", slug).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return count > 0, nil
}
