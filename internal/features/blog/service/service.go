package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sge-logistics/internal/features/blog/domain"
	"sge-logistics/internal/features/blog/ports"

	"github.com/google/uuid"
)

// listCap mirrors the soft row cap used on other list queries.
const listCap = 500

// BlogServiceImpl implements ports.BlogService. Blog posts are plain
// pass-through content: no domain rules beyond slug uniqueness.
type BlogServiceImpl struct {
	repo ports.BlogRepository
}

// NewBlogService creates a new BlogServiceImpl.
func NewBlogService(repo ports.BlogRepository) *BlogServiceImpl {
	return &BlogServiceImpl{repo: repo}
}

// ListPublished returns published posts, newest first.
func (s *BlogServiceImpl) ListPublished(ctx context.Context) ([]domain.BlogPost, error) {
	posts, err := s.repo.ListPublished(ctx, listCap)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	return posts, nil
}

// GetBySlug returns a single post by slug.
func (s *BlogServiceImpl) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	post, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}
	return post, nil
}

// CreatePost stores a new post, enforcing slug uniqueness.
func (s *BlogServiceImpl) CreatePost(ctx context.Context, post *domain.BlogPost) error {
	exists, err := s.repo.SlugExists(ctx, post.Slug)
	if err != nil {
		return fmt.Errorf("failed to check slug: %w", err)
	}
	if exists {
		return domain.ErrSlugTaken
	}

	now := time.Now().UTC()
	post.ID = uuid.NewString()
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.Published && post.PublishedAt == nil {
		post.PublishedAt = &now
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return fmt.Errorf("failed to create blog post: %w", err)
	}
	return nil
}

// UpdatePost persists changes to an existing post.
func (s *BlogServiceImpl) UpdatePost(ctx context.Context, post *domain.BlogPost) error {
	existing, err := s.repo.GetBySlug(ctx, post.Slug)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return err
		}
		return fmt.Errorf("failed to get blog post: %w", err)
	}

	now := time.Now().UTC()
	post.ID = existing.ID
	post.CreatedAt = existing.CreatedAt
	post.UpdatedAt = now
	if post.Published && post.PublishedAt == nil {
		post.PublishedAt = &now
	}

	if err := s.repo.Update(ctx, post); err != nil {
		return fmt.Errorf("failed to update blog post: %w", err)
	}
	return nil
}

// DeletePost removes a post by slug.
func (s *BlogServiceImpl) DeletePost(ctx context.Context, slug string) error {
	if err := s.repo.Delete(ctx, slug); err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	return nil
}
