package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"sge-logistics/internal/core/logger"
	"sge-logistics/internal/features/auth/domain"
	"sge-logistics/internal/features/auth/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SessionLocalKey is the fiber locals key the middleware stores the
// authenticated session under.
const SessionLocalKey = "session"

// AuthHandler handles HTTP requests for admin authentication.
type AuthHandler struct {
	provider     ports.SessionProvider
	loginTimeout time.Duration
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(provider ports.SessionProvider, loginTimeout time.Duration) *AuthHandler {
	return &AuthHandler{
		provider:     provider,
		loginTimeout: loginTimeout,
	}
}

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login godoc
// @Summary Sign in as an administrator
// @Description Exchanges email and password for a session token. All failures return the same generic message.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Admin credentials"
// @Success 200 {object} domain.Session
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// Bound the sign-in so a stalled provider cannot hold the request open.
	ctx, cancel := context.WithTimeout(c.Context(), h.loginTimeout)
	defer cancel()

	session, err := h.provider.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			logger.Get().Error("Sign-in failed", zap.Error(err))
		}
		// Invalid credentials, provider failures and timeouts all get the
		// same response so nothing about accounts or infrastructure leaks.
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid email or password",
		})
	}

	return c.Status(http.StatusOK).JSON(session)
}

// GetSession godoc
// @Summary Get the current session
// @Tags auth
// @Produce json
// @Success 200 {object} domain.Session
// @Failure 401 {object} map[string]string
// @Router /auth/session [get]
func (h *AuthHandler) GetSession(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": "Missing session token",
		})
	}

	session, err := h.provider.GetSession(c.Context(), token)
	if err != nil {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired session",
		})
	}

	return c.Status(http.StatusOK).JSON(session)
}

// RequireSession is a middleware that rejects requests without a valid
// session token and stores the session in locals for downstream handlers.
func (h *AuthHandler) RequireSession(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": "Missing session token",
		})
	}

	session, err := h.provider.GetSession(c.Context(), token)
	if err != nil {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired session",
		})
	}

	c.Locals(SessionLocalKey, session)
	return c.Next()
}

func bearerToken(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, prefix))
}
