package handler

import (
	"errors"
	"net/http"
	"time"

	"sge-logistics/internal/core/logger"
	"sge-logistics/internal/features/contact/domain"
	"sge-logistics/internal/features/contact/ports"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"go.uber.org/zap"
)

// ContactHandler handles HTTP requests for the contact form.
type ContactHandler struct {
	service ports.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{
		service: service,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// MissingFields lists required fields absent from the request, if any.
	MissingFields []string `json:"missing_fields,omitempty"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

// NewRateLimiter returns the sliding-window limiter guarding the contact
// endpoint. The counter is in-memory and per-process: a soft abuse deterrent,
// not a distributed quota.
func NewRateLimiter(max int, window time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               max,
		Expiration:        window,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(http.StatusTooManyRequests).JSON(ErrorResponse{
				Message: "Too many requests, please try again later",
				RayID:   rayID(c),
			})
		},
	})
}

// SubmitContactRequest represents the contact-form request body.
type SubmitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitMessage godoc
// @Summary Submit a contact message
// @Description Stores a contact-form submission and notifies the back office. Rate limited per client address.
// @Tags contact
// @Accept json
// @Produce json
// @Param message body SubmitContactRequest true "Contact message"
// @Success 201 {object} domain.ContactMessage
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /contact [post]
func (h *ContactHandler) SubmitMessage(c *fiber.Ctx) error {
	var req SubmitContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	msg := &domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := h.service.SubmitMessage(c.Context(), msg); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message:       "Missing required fields",
				MissingFields: verr.Missing,
				RayID:         rayID(c),
			})
		}

		logger.Get().Error("Failed to submit contact message",
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusCreated).JSON(msg)
}

// ListMessages godoc
// @Summary List contact messages
// @Description Returns stored contact messages, newest first.
// @Tags contact
// @Produce json
// @Success 200 {array} domain.ContactMessage
// @Failure 500 {object} ErrorResponse
// @Router /contact [get]
func (h *ContactHandler) ListMessages(c *fiber.Ctx) error {
	messages, err := h.service.ListMessages(c.Context())
	if err != nil {
		logger.Get().Error("Failed to list contact messages",
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(messages)
}
