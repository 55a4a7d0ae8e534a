package handler

import (
	"errors"
	"net/http"

	"sge-logistics/internal/core/logger"
	"sge-logistics/internal/features/announcements/domain"
	"sge-logistics/internal/features/announcements/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AnnouncementHandler handles HTTP requests for the site announcement.
type AnnouncementHandler struct {
	service ports.AnnouncementService
}

// NewAnnouncementHandler creates a new AnnouncementHandler.
func NewAnnouncementHandler(service ports.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{
		service: service,
	}
}

// PublishAnnouncementRequest represents the request body for publishing.
type PublishAnnouncementRequest struct {
	Title      string      `json:"title"`
	Body       string      `json:"body"`
	Kind       domain.Kind `json:"kind"`
	TTLSeconds int         `json:"ttl_seconds"`
}

// Publish godoc
// @Summary Publish the site announcement
// @Description Creates or replaces the site-wide announcement banner.
// @Tags announcements
// @Accept json
// @Produce json
// @Param announcement body PublishAnnouncementRequest true "Announcement details"
// @Success 200 {object} domain.Announcement
// @Failure 400 {object} map[string]string
// @Router /announcement [post]
func (h *AnnouncementHandler) Publish(c *fiber.Ctx) error {
	var req PublishAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	announcement, err := h.service.Publish(c.Context(), req.Title, req.Body, req.Kind, req.TTLSeconds)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidKind) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid kind. Must be notice, maintenance, or alert",
			})
		}
		if errors.Is(err, domain.ErrMissingTitle) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Title is required",
			})
		}
		if errors.Is(err, domain.ErrInvalidTTL) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "TTL cannot be negative",
			})
		}
		logger.Get().Error("Failed to publish announcement", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(announcement)
}

// Current godoc
// @Summary Get the active announcement
// @Tags announcements
// @Produce json
// @Success 200 {object} domain.Announcement
// @Failure 404 {object} map[string]string
// @Router /announcement [get]
func (h *AnnouncementHandler) Current(c *fiber.Ctx) error {
	announcement, err := h.service.Current(c.Context())
	if err != nil {
		logger.Get().Error("Failed to get announcement", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	if announcement == nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": "No active announcement",
		})
	}

	return c.Status(http.StatusOK).JSON(announcement)
}

// Clear godoc
// @Summary Clear the active announcement
// @Tags announcements
// @Produce json
// @Success 200 {object} map[string]string
// @Router /announcement [delete]
func (h *AnnouncementHandler) Clear(c *fiber.Ctx) error {
	if err := h.service.Clear(c.Context()); err != nil {
		logger.Get().Error("Failed to clear announcement", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Announcement cleared",
	})
}
