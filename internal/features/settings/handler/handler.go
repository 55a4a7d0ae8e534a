package handler

import (
	"net/http"

	"sge-logistics/internal/core/logger"
	"sge-logistics/internal/features/settings/domain"
	"sge-logistics/internal/features/settings/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SettingsHandler handles HTTP requests for site settings.
type SettingsHandler struct {
	service ports.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(service ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		service: service,
	}
}

// SetMapProviderRequest represents the request body for the provider toggle.
type SetMapProviderRequest struct {
	Provider domain.MapProvider `json:"provider"`
}

// GetMapProvider godoc
// @Summary Get the active map provider
// @Tags settings
// @Produce json
// @Success 200 {object} domain.MapProviderSetting
// @Failure 500 {object} map[string]string
// @Router /settings/map-provider [get]
func (h *SettingsHandler) GetMapProvider(c *fiber.Ctx) error {
	setting, err := h.service.GetMapProvider(c.Context())
	if err != nil {
		logger.Get().Error("Failed to get map provider", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(setting)
}

// SetMapProvider godoc
// @Summary Set the active map provider
// @Tags settings
// @Accept json
// @Produce json
// @Param setting body SetMapProviderRequest true "Provider choice"
// @Success 200 {object} domain.MapProviderSetting
// @Failure 400 {object} map[string]string
// @Router /settings/map-provider [put]
func (h *SettingsHandler) SetMapProvider(c *fiber.Ctx) error {
	var req SetMapProviderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	setting, err := h.service.SetMapProvider(c.Context(), req.Provider)
	if err != nil {
		if err == domain.ErrInvalidMapProvider {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid map provider. Must be google, openstreetmap, or mapbox",
			})
		}
		logger.Get().Error("Failed to set map provider", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(setting)
}
