package handler

import (
	"errors"
	"net/http"

	"sge-logistics/internal/core/logger"
	"sge-logistics/internal/features/blog/domain"
	"sge-logistics/internal/features/blog/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// BlogHandler handles HTTP requests for blog posts.
type BlogHandler struct {
	service ports.BlogService
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(service ports.BlogService) *BlogHandler {
	return &BlogHandler{
		service: service,
	}
}

// PostRequest represents the request body for creating or updating a post.
type PostRequest struct {
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Excerpt    string `json:"excerpt"`
	Content    string `json:"content"`
	CoverImage string `json:"cover_image"`
	Published  bool   `json:"published"`
}

// ListPosts godoc
// @Summary List published blog posts
// @Tags blog
// @Produce json
// @Success 200 {array} domain.BlogPost
// @Failure 500 {object} map[string]string
// @Router /blog [get]
func (h *BlogHandler) ListPosts(c *fiber.Ctx) error {
	posts, err := h.service.ListPublished(c.Context())
	if err != nil {
		logger.Get().Error("Failed to list blog posts", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(posts)
}

// GetPost godoc
// @Summary Get a blog post by slug
// @Tags blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} domain.BlogPost
// @Failure 404 {object} map[string]string
// @Router /blog/{slug} [get]
func (h *BlogHandler) GetPost(c *fiber.Ctx) error {
	slug := c.Params("slug")

	post, err := h.service.GetBySlug(c.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "Post not found",
			})
		}
		logger.Get().Error("Failed to get blog post", zap.String("slug", slug), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(post)
}

// CreatePost godoc
// @Summary Create a blog post
// @Tags blog
// @Accept json
// @Produce json
// @Param post body PostRequest true "Post details"
// @Success 201 {object} domain.BlogPost
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /blog [post]
func (h *BlogHandler) CreatePost(c *fiber.Ctx) error {
	var req PostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Slug == "" || req.Title == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "slug and title are required",
		})
	}

	post := &domain.BlogPost{
		Slug:       req.Slug,
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		Published:  req.Published,
	}

	if err := h.service.CreatePost(c.Context(), post); err != nil {
		if errors.Is(err, domain.ErrSlugTaken) {
			return c.Status(http.StatusConflict).JSON(fiber.Map{
				"error": "Slug already in use",
			})
		}
		logger.Get().Error("Failed to create blog post", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(http.StatusCreated).JSON(post)
}

// UpdatePost godoc
// @Summary Update a blog post
// @Tags blog
// @Accept json
// @Produce json
// @Param slug path string true "Post slug"
// @Param post body PostRequest true "Post details"
// @Success 200 {object} domain.BlogPost
// @Failure 404 {object} map[string]string
// @Router /blog/{slug} [put]
func (h *BlogHandler) UpdatePost(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var req PostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	post := &domain.BlogPost{
		Slug:       slug,
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		Published:  req.Published,
	}

	if err := h.service.UpdatePost(c.Context(), post); err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "Post not found",
			})
		}
		logger.Get().Error("Failed to update blog post", zap.String("slug", slug), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(http.StatusOK).JSON(post)
}

// DeletePost godoc
// @Summary Delete a blog post
// @Tags blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /blog/{slug} [delete]
func (h *BlogHandler) DeletePost(c *fiber.Ctx) error {
	slug := c.Params("slug")

	if err := h.service.DeletePost(c.Context(), slug); err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "Post not found",
			})
		}
		logger.Get().Error("Failed to delete blog post", zap.String("slug", slug), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Post deleted",
	})
}
