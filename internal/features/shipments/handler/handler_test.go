package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sge-logistics/internal/features/shipments/domain"
	"sge-logistics/internal/features/shipments/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockShipmentService is a mock implementation of ports.ShipmentService.
type MockShipmentService struct {
	mock.Mock
}

func (m *MockShipmentService) CreateShipment(ctx context.Context, in domain.CreateShipmentInput) (*domain.Shipment, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shipment), args.Error(1)
}

func (m *MockShipmentService) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Shipment, error) {
	args := m.Called(ctx, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shipment), args.Error(1)
}

func (m *MockShipmentService) ListShipments(ctx context.Context) ([]domain.Shipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shipment), args.Error(1)
}

func (m *MockShipmentService) UpdateStatus(ctx context.Context, trackingNumber string, in domain.UpdateStatusInput) (*domain.Shipment, error) {
	args := m.Called(ctx, trackingNumber, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shipment), args.Error(1)
}

func (m *MockShipmentService) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.DashboardStats), args.Error(1)
}

func setupApp(svc *MockShipmentService) *fiber.App {
	app := fiber.New()
	h := NewShipmentHandler(svc)
	app.Post("/shipments", h.CreateShipment)
	app.Get("/shipments", h.ListShipments)
	app.Get("/shipments/:trackingNumber", h.GetShipment)
	app.Patch("/shipments/:trackingNumber/status", h.UpdateStatus)
	app.Get("/dashboard/stats", h.DashboardStats)
	return app
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestShipmentHandler_CreateShipment(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockShipmentService)
		app := setupApp(mockService)

		created := &domain.Shipment{
			TrackingNumber: "SGE-1A2B3C4D",
			Status:         domain.StatusPending,
		}
		mockService.On("CreateShipment", mock.Anything, mock.Anything).Return(created, nil)

		resp, err := app.Test(jsonRequest(http.MethodPost, "/shipments", domain.CreateShipmentInput{
			SenderName: "Acme",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var got domain.Shipment
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "SGE-1A2B3C4D", got.TrackingNumber)
		mockService.AssertExpectations(t)
	})

	t.Run("ValidationError", func(t *testing.T) {
		mockService := new(MockShipmentService)
		app := setupApp(mockService)

		verr := &domain.ValidationError{Missing: []string{"sender_name", "recipient_address"}}
		mockService.On("CreateShipment", mock.Anything, mock.Anything).Return(nil, verr)

		resp, err := app.Test(jsonRequest(http.MethodPost, "/shipments", domain.CreateShipmentInput{}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.ElementsMatch(t, []string{"sender_name", "recipient_address"}, body.MissingFields)
	})

	t.Run("InvalidBody", func(t *testing.T) {
		mockService := new(MockShipmentService)
		app := setupApp(mockService)

		req := httptest.NewRequest(http.MethodPost, "/shipments", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("ServiceError", func(t *testing.T) {
		mockService := new(MockShipmentService)
		app := setupApp(mockService)

		mockService.On("CreateShipment", mock.Anything, mock.Anything).
			Return(nil, errors.New("failed to create shipment: connection refused"))

		resp, err := app.Test(jsonRequest(http.MethodPost, "/shipments", domain.CreateShipmentInput{}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var body ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Contains(t, body.Message, "connection refused")
	})
}

func TestShipmentHandler_GetShipment(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockShipmentService)
		app := setupApp(mockService)

		mockService.On("GetByTrackingNumber", mock.Anything, "SGE-1A2B3C4D").
			Return(&domain.Shipment{TrackingNumber: "SGE-1A2B3C4D", Status: domain.StatusInTransit}, nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/shipments/SGE-1A2B3C4D", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockShipmentService)
		app := setupApp(mockService)

		mockService.On("GetByTrackingNumber", mock.Anything, "SGE-FFFFFFFF").
			Return(nil, domain.ErrShipmentNotFound)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/shipments/SGE-FFFFFFFF", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestShipmentHandler_UpdateStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockShipmentService)
		app := setupApp(mockService)

		updated := &domain.Shipment{TrackingNumber: "SGE-1A2B3C4D", Status: domain.StatusDelivered}
		mockService.On("UpdateStatus", mock.Anything, "SGE-1A2B3C4D", mock.Anything).Return(updated, nil)

		resp, err := app.Test(jsonRequest(http.MethodPatch, "/shipments/SGE-1A2B3C4D/status", domain.UpdateStatusInput{
			Status: domain.StatusDelivered,
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		mockService := new(MockShipmentService)
		app := setupApp(mockService)

		mockService.On("UpdateStatus", mock.Anything, "SGE-1A2B3C4D", mock.Anything).
			Return(nil, service.ErrInvalidStatus)

		resp, err := app.Test(jsonRequest(http.MethodPatch, "/shipments/SGE-1A2B3C4D/status", domain.UpdateStatusInput{
			Status: "Teleported",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockShipmentService)
		app := setupApp(mockService)

		mockService.On("UpdateStatus", mock.Anything, "SGE-FFFFFFFF", mock.Anything).
			Return(nil, domain.ErrShipmentNotFound)

		resp, err := app.Test(jsonRequest(http.MethodPatch, "/shipments/SGE-FFFFFFFF/status", domain.UpdateStatusInput{
			Status: domain.StatusDelivered,
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestShipmentHandler_ListShipments(t *testing.T) {
	mockService := new(MockShipmentService)
	app := setupApp(mockService)

	mockService.On("ListShipments", mock.Anything).Return([]domain.Shipment{
		{TrackingNumber: "SGE-00000001"},
		{TrackingNumber: "SGE-00000002"},
	}, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/shipments", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got []domain.Shipment
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Len(t, got, 2)
}

func TestShipmentHandler_DashboardStats(t *testing.T) {
	mockService := new(MockShipmentService)
	app := setupApp(mockService)

	mockService.On("DashboardStats", mock.Anything).Return(domain.DashboardStats{
		TotalShipments:    10,
		LiveCount:         3,
		ExceptionCount:    1,
		OnTimePerformance: 67,
		Revenue:           420.5,
	}, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got domain.DashboardStats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, 67, got.OnTimePerformance)
	assert.Equal(t, 3, got.LiveCount)
}
