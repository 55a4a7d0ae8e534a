package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sge-logistics/internal/features/blog/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockBlogService is a mock implementation of ports.BlogService.
type MockBlogService struct {
	mock.Mock
}

func (m *MockBlogService) ListPublished(ctx context.Context) ([]domain.BlogPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BlogPost), args.Error(1)
}

func (m *MockBlogService) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlogPost), args.Error(1)
}

func (m *MockBlogService) CreatePost(ctx context.Context, post *domain.BlogPost) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockBlogService) UpdatePost(ctx context.Context, post *domain.BlogPost) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockBlogService) DeletePost(ctx context.Context, slug string) error {
	return m.Called(ctx, slug).Error(0)
}

func setupApp(svc *MockBlogService) *fiber.App {
	h := NewBlogHandler(svc)

	app := fiber.New()
	app.Get("/blog", h.ListPosts)
	app.Get("/blog/:slug", h.GetPost)
	app.Post("/blog", h.CreatePost)
	app.Put("/blog/:slug", h.UpdatePost)
	app.Delete("/blog/:slug", h.DeletePost)
	return app
}

func TestListPosts_ReturnsPublished(t *testing.T) {
	svc := new(MockBlogService)
	svc.On("ListPublished", mock.Anything).Return([]domain.BlogPost{
		{Slug: "new-miami-hub", Title: "Our new Miami hub"},
	}, nil)

	app := setupApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/blog", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var posts []domain.BlogPost
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "new-miami-hub", posts[0].Slug)
}

func TestGetPost_NotFound(t *testing.T) {
	svc := new(MockBlogService)
	svc.On("GetBySlug", mock.Anything, "missing").Return(nil, domain.ErrPostNotFound)

	app := setupApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/blog/missing", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreatePost_Success(t *testing.T) {
	svc := new(MockBlogService)
	svc.On("CreatePost", mock.Anything, mock.MatchedBy(func(p *domain.BlogPost) bool {
		return p.Slug == "new-miami-hub" && p.Published
	})).Return(nil)

	app := setupApp(svc)

	body, _ := json.Marshal(PostRequest{
		Slug:      "new-miami-hub",
		Title:     "Our new Miami hub",
		Published: true,
	})
	req := httptest.NewRequest(http.MethodPost, "/blog", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	svc.AssertExpectations(t)
}

func TestCreatePost_MissingSlugOrTitle(t *testing.T) {
	svc := new(MockBlogService)
	app := setupApp(svc)

	body, _ := json.Marshal(PostRequest{Title: "No slug"})
	req := httptest.NewRequest(http.MethodPost, "/blog", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	svc.AssertNotCalled(t, "CreatePost")
}

func TestCreatePost_SlugTaken(t *testing.T) {
	svc := new(MockBlogService)
	svc.On("CreatePost", mock.Anything, mock.Anything).Return(domain.ErrSlugTaken)

	app := setupApp(svc)

	body, _ := json.Marshal(PostRequest{Slug: "taken", Title: "Duplicate"})
	req := httptest.NewRequest(http.MethodPost, "/blog", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestUpdatePost_NotFound(t *testing.T) {
	svc := new(MockBlogService)
	svc.On("UpdatePost", mock.Anything, mock.Anything).Return(domain.ErrPostNotFound)

	app := setupApp(svc)

	body, _ := json.Marshal(PostRequest{Title: "Renamed"})
	req := httptest.NewRequest(http.MethodPut, "/blog/missing", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeletePost_Success(t *testing.T) {
	svc := new(MockBlogService)
	svc.On("DeletePost", mock.Anything, "old-post").Return(nil)

	app := setupApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/blog/old-post", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	svc.AssertExpectations(t)
}
