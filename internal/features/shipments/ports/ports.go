package ports

import (
	"context"

	"sge-logistics/internal/features/shipments/domain"
)

// ShipmentService defines the primary port for shipment operations.
type ShipmentService interface {
	CreateShipment(ctx context.Context, in domain.CreateShipmentInput) (*domain.Shipment, error)
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Shipment, error)
	ListShipments(ctx context.Context) ([]domain.Shipment, error)
	UpdateStatus(ctx context.Context, trackingNumber string, in domain.UpdateStatusInput) (*domain.Shipment, error)
	DashboardStats(ctx context.Context) (domain.DashboardStats, error)
}

// ShipmentRepository defines the secondary port for shipment storage.
type ShipmentRepository interface {
	// Create inserts the shipment and its initial tracking event atomically.
	Create(ctx context.Context, shipment *domain.Shipment, event *domain.TrackingEvent) error
	// AppendEvent inserts a tracking event and persists the shipment's new state.
	AppendEvent(ctx context.Context, shipment *domain.Shipment, event *domain.TrackingEvent) error
	// GetByTrackingNumber returns the shipment with its events, oldest first.
	// Returns domain.ErrShipmentNotFound when no row matches.
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Shipment, error)
	// List returns up to limit shipments, newest first.
	List(ctx context.Context, limit int) ([]domain.Shipment, error)
	// TrackingNumberExists reports whether a tracking number is already taken.
	TrackingNumberExists(ctx context.Context, trackingNumber string) (bool, error)
}

// Geocoder defines the secondary port for best-effort forward geocoding.
// Implementations return (nil, nil) when no result is found; callers must
// treat a nil result as "no coordinates available", never as an error.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*domain.Coordinates, error)
}

// Notifier receives fire-and-forget shipment notifications. Implementations
// must never block the caller and must swallow delivery failures.
type Notifier interface {
	ShipmentCreated(shipment *domain.Shipment)
	ShipmentUpdated(shipment *domain.Shipment, event *domain.TrackingEvent)
}

// StatsCache defines the secondary port for cached dashboard stats.
// Get returns (nil, nil) on a cache miss.
type StatsCache interface {
	Get(ctx context.Context) (*domain.DashboardStats, error)
	Set(ctx context.Context, stats domain.DashboardStats) error
}
