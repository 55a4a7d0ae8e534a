package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sge-logistics/internal/core/logger"
	"sge-logistics/internal/features/shipments/domain"
	"sge-logistics/internal/features/shipments/ports"

	"go.uber.org/zap"
)

var (
	// ErrInvalidStatus is returned when a status update carries a value
	// outside the closed status vocabulary.
	ErrInvalidStatus = errors.New("unknown shipment status")
	// ErrTrackingNumberExhausted is returned when a unique tracking number
	// could not be allocated after several attempts.
	ErrTrackingNumberExhausted = errors.New("could not allocate a unique tracking number")
)

const (
	// listCap is the soft row cap applied to admin list queries.
	listCap = 500
	// maxTrackingNumberAttempts bounds the collision-retry loop. With 4 random
	// bytes a single collision is already astronomically unlikely.
	maxTrackingNumberAttempts = 5
)

// ShipmentServiceImpl implements ports.ShipmentService.
type ShipmentServiceImpl struct {
	repo     ports.ShipmentRepository
	geocoder ports.Geocoder
	notifier ports.Notifier
	stats    ports.StatsCache
}

// NewShipmentService creates a new ShipmentServiceImpl.
// geocoder, notifier and stats may be nil; the corresponding side effects are
// then skipped.
func NewShipmentService(
	repo ports.ShipmentRepository,
	geocoder ports.Geocoder,
	notifier ports.Notifier,
	stats ports.StatsCache,
) *ShipmentServiceImpl {
	return &ShipmentServiceImpl{
		repo:     repo,
		geocoder: geocoder,
		notifier: notifier,
		stats:    stats,
	}
}

// CreateShipment validates the input, generates identifiers and the delivery
// estimate, persists the shipment with its initial tracking event, and fires
// the created notification.
func (s *ShipmentServiceImpl) CreateShipment(ctx context.Context, in domain.CreateShipmentInput) (*domain.Shipment, error) {
	if missing := in.MissingFields(); len(missing) > 0 {
		return nil, &domain.ValidationError{Missing: missing}
	}

	trackingNumber, err := s.allocateTrackingNumber(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	shipment := &domain.Shipment{
		TrackingNumber:    trackingNumber,
		ReferenceCode:     domain.NewReferenceCode(),
		BarcodeValue:      domain.NewBarcodeValue(),
		Status:            domain.StatusPending,
		DeclaredValue:     in.DeclaredValue,
		DeliverySpeed:     in.DeliverySpeed,
		SenderName:        in.SenderName,
		SenderEmail:       in.SenderEmail,
		SenderPhone:       in.SenderPhone,
		SenderAddress:     in.SenderAddress,
		RecipientName:     in.RecipientName,
		RecipientEmail:    in.RecipientEmail,
		RecipientPhone:    in.RecipientPhone,
		RecipientAddress:  in.RecipientAddress,
		Origin:            in.Origin,
		Destination:       in.Destination,
		EstimatedDelivery: domain.EstimateDeliveryDate(in.DeliverySpeed, now),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	s.geocodeAddresses(ctx, shipment)

	event := &domain.TrackingEvent{
		Status:      shipment.Status,
		Description: "Shipment created",
		Location:    shipment.SenderAddress,
		Lat:         shipment.SenderLat,
		Lng:         shipment.SenderLng,
		Agent:       "system",
		Progress:    domain.ProgressForStatus(shipment.Status),
		CreatedAt:   now,
	}

	if err := s.repo.Create(ctx, shipment, event); err != nil {
		return nil, fmt.Errorf("failed to create shipment: %w", err)
	}
	shipment.Events = append(shipment.Events, *event)

	if s.notifier != nil {
		s.notifier.ShipmentCreated(shipment)
	}

	return shipment, nil
}

// GetByTrackingNumber returns a shipment with its full tracking history.
func (s *ShipmentServiceImpl) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Shipment, error) {
	shipment, err := s.repo.GetByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		if errors.Is(err, domain.ErrShipmentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get shipment: %w", err)
	}
	return shipment, nil
}

// ListShipments returns shipments newest first, capped at 500 rows.
func (s *ShipmentServiceImpl) ListShipments(ctx context.Context) ([]domain.Shipment, error) {
	shipments, err := s.repo.List(ctx, listCap)
	if err != nil {
		return nil, fmt.Errorf("failed to list shipments: %w", err)
	}
	return shipments, nil
}

// UpdateStatus sets the shipment status, appends an immutable tracking event
// with a progress snapshot, stamps the delivered timestamp when entering
// Delivered, and fires the updated notification. No transition graph is
// enforced: any status may follow any other.
func (s *ShipmentServiceImpl) UpdateStatus(ctx context.Context, trackingNumber string, in domain.UpdateStatusInput) (*domain.Shipment, error) {
	if !domain.IsKnownStatus(in.Status) {
		return nil, ErrInvalidStatus
	}

	shipment, err := s.repo.GetByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		if errors.Is(err, domain.ErrShipmentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get shipment: %w", err)
	}

	now := time.Now().UTC()
	shipment.Status = in.Status
	shipment.UpdatedAt = now

	if in.Status == domain.StatusDelivered && shipment.DeliveredAt == nil {
		shipment.DeliveredAt = &now
	}
	if in.Lat != nil && in.Lng != nil {
		shipment.CurrentLat = in.Lat
		shipment.CurrentLng = in.Lng
	}

	description := in.Description
	if description == "" {
		description = fmt.Sprintf("Status updated to %s", in.Status)
	}

	event := &domain.TrackingEvent{
		ShipmentID:  shipment.ID,
		Status:      in.Status,
		Description: description,
		Location:    in.Location,
		Lat:         in.Lat,
		Lng:         in.Lng,
		Agent:       in.Agent,
		Progress:    domain.ProgressForStatus(in.Status),
		CreatedAt:   now,
	}

	if err := s.repo.AppendEvent(ctx, shipment, event); err != nil {
		return nil, fmt.Errorf("failed to update shipment status: %w", err)
	}
	shipment.Events = append(shipment.Events, *event)

	if s.notifier != nil {
		s.notifier.ShipmentUpdated(shipment, event)
	}

	return shipment, nil
}

// DashboardStats recomputes the aggregate metrics from a full scan, with a
// short-TTL cache in front. Storage failures degrade to zeroed stats instead
// of an error: the dashboard is display-only.
func (s *ShipmentServiceImpl) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	if s.stats != nil {
		cached, err := s.stats.Get(ctx)
		if err != nil {
			logger.Get().Debug("Stats cache read failed", zap.Error(err))
		} else if cached != nil {
			return *cached, nil
		}
	}

	shipments, err := s.repo.List(ctx, 0)
	if err != nil {
		logger.Get().Error("Failed to scan shipments for dashboard stats", zap.Error(err))
		return domain.DashboardStats{}, nil
	}

	stats := domain.ComputeStats(shipments)

	if s.stats != nil {
		if err := s.stats.Set(ctx, stats); err != nil {
			logger.Get().Debug("Stats cache write failed", zap.Error(err))
		}
	}

	return stats, nil
}

// allocateTrackingNumber generates tracking numbers until one is free.
func (s *ShipmentServiceImpl) allocateTrackingNumber(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxTrackingNumberAttempts; attempt++ {
		trackingNumber := domain.NewTrackingNumber()

		exists, err := s.repo.TrackingNumberExists(ctx, trackingNumber)
		if err != nil {
			return "", fmt.Errorf("failed to check tracking number: %w", err)
		}
		if !exists {
			return trackingNumber, nil
		}

		logger.Get().Warn("Tracking number collision, retrying",
			zap.String("tracking_number", trackingNumber),
			zap.Int("attempt", attempt+1),
		)
	}
	return "", ErrTrackingNumberExhausted
}

// geocodeAddresses fills in sender/recipient coordinates best-effort.
// Geocoding failures never affect shipment creation.
func (s *ShipmentServiceImpl) geocodeAddresses(ctx context.Context, shipment *domain.Shipment) {
	if s.geocoder == nil {
		return
	}

	if coords, err := s.geocoder.Geocode(ctx, shipment.SenderAddress); err == nil && coords != nil {
		shipment.SenderLat = &coords.Lat
		shipment.SenderLng = &coords.Lng
		// The shipment starts at the sender.
		shipment.CurrentLat = &coords.Lat
		shipment.CurrentLng = &coords.Lng
	}

	if coords, err := s.geocoder.Geocode(ctx, shipment.RecipientAddress); err == nil && coords != nil {
		shipment.RecipientLat = &coords.Lat
		shipment.RecipientLng = &coords.Lng
	}
}
