package service

import (
	"context"
	"errors"
	"testing"

	"sge-logistics/internal/features/blog/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockBlogRepository is an in-memory BlogRepository for testing.
type mockBlogRepository struct {
	posts     map[string]*domain.BlogPost
	createErr error
}

func newMockBlogRepository() *mockBlogRepository {
	return &mockBlogRepository{posts: make(map[string]*domain.BlogPost)}
}

func (m *mockBlogRepository) ListPublished(ctx context.Context, limit int) ([]domain.BlogPost, error) {
	var out []domain.BlogPost
	for _, p := range m.posts {
		if p.Published {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockBlogRepository) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	p, ok := m.posts[slug]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	return p, nil
}

func (m *mockBlogRepository) Create(ctx context.Context, post *domain.BlogPost) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.posts[post.Slug] = post
	return nil
}

func (m *mockBlogRepository) Update(ctx context.Context, post *domain.BlogPost) error {
	m.posts[post.Slug] = post
	return nil
}

func (m *mockBlogRepository) Delete(ctx context.Context, slug string) error {
	if _, ok := m.posts[slug]; !ok {
		return domain.ErrPostNotFound
	}
	delete(m.posts, slug)
	return nil
}

func (m *mockBlogRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	_, ok := m.posts[slug]
	return ok, nil
}

// TestCreatePost verifies creation, publish stamping, and slug uniqueness.
func TestCreatePost(t *testing.T) {
	repo := newMockBlogRepository()
	svc := NewBlogService(repo)

	post := &domain.BlogPost{
		Slug:      "freight-trends-2026",
		Title:     "Freight Trends in 2026",
		Published: true,
	}

	require.NoError(t, svc.CreatePost(context.Background(), post))
	assert.NotEmpty(t, post.ID)
	assert.NotNil(t, post.PublishedAt)

	dup := &domain.BlogPost{Slug: "freight-trends-2026", Title: "Duplicate"}
	err := svc.CreatePost(context.Background(), dup)
	assert.ErrorIs(t, err, domain.ErrSlugTaken)
}

// TestCreatePost_Draft verifies drafts get no published timestamp.
func TestCreatePost_Draft(t *testing.T) {
	svc := NewBlogService(newMockBlogRepository())

	post := &domain.BlogPost{Slug: "draft", Title: "Draft", Published: false}
	require.NoError(t, svc.CreatePost(context.Background(), post))
	assert.Nil(t, post.PublishedAt)
}

// TestUpdatePost verifies updates preserve identity and stamp publication.
func TestUpdatePost(t *testing.T) {
	repo := newMockBlogRepository()
	svc := NewBlogService(repo)

	post := &domain.BlogPost{Slug: "about-routes", Title: "Routes"}
	require.NoError(t, svc.CreatePost(context.Background(), post))
	originalID := post.ID

	updated := &domain.BlogPost{Slug: "about-routes", Title: "Routes, revised", Published: true}
	require.NoError(t, svc.UpdatePost(context.Background(), updated))

	assert.Equal(t, originalID, updated.ID)
	assert.NotNil(t, updated.PublishedAt)

	err := svc.UpdatePost(context.Background(), &domain.BlogPost{Slug: "missing"})
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

// TestDeletePost verifies deletion and the not-found path.
func TestDeletePost(t *testing.T) {
	repo := newMockBlogRepository()
	svc := NewBlogService(repo)

	post := &domain.BlogPost{Slug: "to-delete", Title: "Bye"}
	require.NoError(t, svc.CreatePost(context.Background(), post))

	require.NoError(t, svc.DeletePost(context.Background(), "to-delete"))
	assert.ErrorIs(t, svc.DeletePost(context.Background(), "to-delete"), domain.ErrPostNotFound)
}

// TestListPublished verifies only published posts are returned.
func TestListPublished(t *testing.T) {
	repo := newMockBlogRepository()
	svc := NewBlogService(repo)

	require.NoError(t, svc.CreatePost(context.Background(), &domain.BlogPost{Slug: "live", Title: "Live", Published: true}))
	require.NoError(t, svc.CreatePost(context.Background(), &domain.BlogPost{Slug: "draft", Title: "Draft"}))

	posts, err := svc.ListPublished(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "live", posts[0].Slug)
}

// TestCreatePost_RepositoryError verifies write failures surface.
func TestCreatePost_RepositoryError(t *testing.T) {
	repo := newMockBlogRepository()
	repo.createErr = errors.New("connection reset")
	svc := NewBlogService(repo)

	err := svc.CreatePost(context.Background(), &domain.BlogPost{Slug: "x", Title: "X"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}
