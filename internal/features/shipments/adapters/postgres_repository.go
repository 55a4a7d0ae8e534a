package adapters

import (
	"context"
	"errors"
	"fmt"

	"sge-logistics/internal/features/shipments/domain"

	"gorm.io/gorm"
)

// PostgresShipmentRepository implements ports.ShipmentRepository on GORM.
type PostgresShipmentRepository struct {
	db *gorm.DB
}

// NewPostgresShipmentRepository creates a new PostgresShipmentRepository.
func NewPostgresShipmentRepository(db *gorm.DB) *PostgresShipmentRepository {
	return &PostgresShipmentRepository{db: db}
}

// Create inserts the shipment and its first tracking event in one transaction.
func (r *PostgresShipmentRepository) Create(ctx context.Context, shipment *domain.Shipment, event *domain.TrackingEvent) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(shipment).Error; err != nil {
			return err
		}
		event.ShipmentID = shipment.ID
		return tx.Create(event).Error
	})
	if err != nil {
		return fmt.Errorf("failed to insert shipment: %w", err)
	}
	return nil
}

// AppendEvent persists the shipment's updated fields and inserts the event.
func (r *PostgresShipmentRepository) AppendEvent(ctx context.Context, shipment *domain.Shipment, event *domain.TrackingEvent) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(shipment).Updates(map[string]interface{}{
			"status":       shipment.Status,
			"delivered_at": shipment.DeliveredAt,
			"current_lat":  shipment.CurrentLat,
			"current_lng":  shipment.CurrentLng,
			"updated_at":   shipment.UpdatedAt,
		}).Error; err != nil {
			return err
		}
		event.ShipmentID = shipment.ID
		return tx.Create(event).Error
	})
	if err != nil {
		return fmt.Errorf("failed to append tracking event: %w", err)
	}
	return nil
}

// GetByTrackingNumber returns the shipment with its events, oldest first.
func (r *PostgresShipmentRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Shipment, error) {
	var shipment domain.Shipment
	err := r.db.WithContext(ctx).
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&shipment, "tracking_number = ?", trackingNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("failed to query shipment: %w", err)
	}
	return &shipment, nil
}

// List returns shipments newest first. A limit of 0 or less returns all rows.
func (r *PostgresShipmentRepository) List(ctx context.Context, limit int) ([]domain.Shipment, error) {
	var shipments []domain.Shipment
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&shipments).Error; err != nil {
		return nil, fmt.Errorf("failed to list shipments: %w", err)
	}
	return shipments, nil
}

// TrackingNumberExists reports whether a tracking number is already taken.
func (r *PostgresShipmentRepository) TrackingNumberExists(ctx context.Context, trackingNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Shipment{}).
		Where("tracking_number = ?", trackingNumber).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check tracking number: %w", err)
	}
	return count > 0, nil
}
