package handler

import (
	"errors"
	"net/http"

	"sge-logistics/internal/core/logger"
	"sge-logistics/internal/features/shipments/domain"
	"sge-logistics/internal/features/shipments/ports"
	"sge-logistics/internal/features/shipments/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ShipmentHandler handles HTTP requests for shipment operations.
type ShipmentHandler struct {
	service ports.ShipmentService
}

// NewShipmentHandler creates a new ShipmentHandler.
func NewShipmentHandler(service ports.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{
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

// CreateShipment godoc
// @Summary Create a shipment
// @Description Creates a shipment with generated tracking number, reference code, barcode and delivery estimate, and records the initial tracking event.
// @Tags shipments
// @Accept json
// @Produce json
// @Param shipment body domain.CreateShipmentInput true "Shipment details"
// @Success 201 {object} domain.Shipment
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /shipments [post]
func (h *ShipmentHandler) CreateShipment(c *fiber.Ctx) error {
	var in domain.CreateShipmentInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	shipment, err := h.service.CreateShipment(c.Context(), in)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message:       "Missing required fields",
				MissingFields: verr.Missing,
				RayID:         rayID(c),
			})
		}

		logger.Get().Error("Failed to create shipment",
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusCreated).JSON(shipment)
}

// GetShipment godoc
// @Summary Track a shipment
// @Description Retrieves a shipment and its full tracking history by tracking number.
// @Tags shipments
// @Produce json
// @Param trackingNumber path string true "Tracking Number (SGE-XXXXXXXX)"
// @Success 200 {object} domain.Shipment
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /shipments/{trackingNumber} [get]
func (h *ShipmentHandler) GetShipment(c *fiber.Ctx) error {
	trackingNumber := c.Params("trackingNumber")
	if trackingNumber == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "tracking number is required",
			RayID:   rayID(c),
		})
	}

	shipment, err := h.service.GetByTrackingNumber(c.Context(), trackingNumber)
	if err != nil {
		if errors.Is(err, domain.ErrShipmentNotFound) {
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: "Shipment not found",
				RayID:   rayID(c),
			})
		}

		logger.Get().Error("Failed to fetch shipment",
			zap.String("tracking_number", trackingNumber),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(shipment)
}

// ListShipments godoc
// @Summary List shipments
// @Description Returns shipments newest first, capped at 500 rows.
// @Tags shipments
// @Produce json
// @Success 200 {array} domain.Shipment
// @Failure 500 {object} ErrorResponse
// @Router /shipments [get]
func (h *ShipmentHandler) ListShipments(c *fiber.Ctx) error {
	shipments, err := h.service.ListShipments(c.Context())
	if err != nil {
		logger.Get().Error("Failed to list shipments",
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(shipments)
}

// UpdateStatus godoc
// @Summary Update shipment status
// @Description Sets the shipment status and appends an immutable tracking event with a progress snapshot.
// @Tags shipments
// @Accept json
// @Produce json
// @Param trackingNumber path string true "Tracking Number"
// @Param update body domain.UpdateStatusInput true "Status update"
// @Success 200 {object} domain.Shipment
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /shipments/{trackingNumber}/status [patch]
func (h *ShipmentHandler) UpdateStatus(c *fiber.Ctx) error {
	trackingNumber := c.Params("trackingNumber")
	if trackingNumber == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "tracking number is required",
			RayID:   rayID(c),
		})
	}

	var in domain.UpdateStatusInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	shipment, err := h.service.UpdateStatus(c.Context(), trackingNumber, in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "Unknown shipment status",
				RayID:   rayID(c),
			})
		case errors.Is(err, domain.ErrShipmentNotFound):
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: "Shipment not found",
				RayID:   rayID(c),
			})
		}

		logger.Get().Error("Failed to update shipment status",
			zap.String("tracking_number", trackingNumber),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(shipment)
}

// DashboardStats godoc
// @Summary Dashboard metrics
// @Description Returns live/exception counts, on-time performance and revenue. Storage failures degrade to zeroed stats.
// @Tags shipments
// @Produce json
// @Success 200 {object} domain.DashboardStats
// @Router /dashboard/stats [get]
func (h *ShipmentHandler) DashboardStats(c *fiber.Ctx) error {
	stats, err := h.service.DashboardStats(c.Context())
	if err != nil {
		// DashboardStats fails soft in the service; this is belt and braces.
		logger.Get().Error("Failed to compute dashboard stats",
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		stats = domain.DashboardStats{}
	}

	return c.Status(http.StatusOK).JSON(stats)
}
