package domain

import (
	"errors"
	"strings"
	"time"
)

// ErrShipmentNotFound is returned when no shipment matches a tracking number.
var ErrShipmentNotFound = errors.New("shipment not found")

// Coordinates is a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Shipment represents a shipment record.
// Progress is never stored on the shipment itself; it is derived from Status
// via ProgressForStatus wherever it is displayed. Tracking events carry a
// snapshot taken at insert time.
type Shipment struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	TrackingNumber string `gorm:"uniqueIndex;size:16" json:"tracking_number"`
	ReferenceCode  string `gorm:"size:16" json:"reference_code"`
	BarcodeValue   string `gorm:"size:16" json:"barcode_value"`
	Status         Status `gorm:"size:64;index" json:"status"`

	DeclaredValue float64       `json:"declared_value"`
	DeliverySpeed DeliverySpeed `gorm:"size:32" json:"delivery_speed"`

	SenderName    string `gorm:"size:128" json:"sender_name"`
	SenderEmail   string `gorm:"size:128" json:"sender_email"`
	SenderPhone   string `gorm:"size:32" json:"sender_phone"`
	SenderAddress string `gorm:"size:256" json:"sender_address"`

	RecipientName    string `gorm:"size:128" json:"recipient_name"`
	RecipientEmail   string `gorm:"size:128" json:"recipient_email"`
	RecipientPhone   string `gorm:"size:32" json:"recipient_phone"`
	RecipientAddress string `gorm:"size:256" json:"recipient_address"`

	// Origin and Destination are short display labels (city or region) for
	// the public tracking page, distinct from the full addresses.
	Origin      string `gorm:"size:128" json:"origin"`
	Destination string `gorm:"size:128" json:"destination"`

	CurrentLat   *float64 `json:"current_lat,omitempty"`
	CurrentLng   *float64 `json:"current_lng,omitempty"`
	SenderLat    *float64 `json:"sender_lat,omitempty"`
	SenderLng    *float64 `json:"sender_lng,omitempty"`
	RecipientLat *float64 `json:"recipient_lat,omitempty"`
	RecipientLng *float64 `json:"recipient_lng,omitempty"`

	EstimatedDelivery time.Time  `json:"estimated_delivery"`
	DeliveredAt       *time.Time `json:"delivered_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Events is the append-only tracking history, oldest first.
	Events []TrackingEvent `gorm:"foreignKey:ShipmentID" json:"events,omitempty"`
}

// Progress returns the derived progress percentage for the current status.
func (s *Shipment) Progress() int {
	return ProgressForStatus(s.Status)
}

// TrackingEvent is an immutable log entry in a shipment's history.
// Events are only ever inserted, never updated or deleted.
type TrackingEvent struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	ShipmentID  uint     `gorm:"index" json:"-"`
	Status      Status   `gorm:"size:64" json:"status"`
	Description string   `gorm:"size:512" json:"description"`
	Location    string   `gorm:"size:128" json:"location"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
	Agent       string   `gorm:"size:128" json:"agent"`
	// Progress is a snapshot of ProgressForStatus(Status) at insert time.
	Progress  int       `json:"progress"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateShipmentInput carries the fields accepted at shipment creation.
type CreateShipmentInput struct {
	DeclaredValue float64       `json:"declared_value"`
	DeliverySpeed DeliverySpeed `json:"delivery_speed"`

	SenderName    string `json:"sender_name"`
	SenderEmail   string `json:"sender_email"`
	SenderPhone   string `json:"sender_phone"`
	SenderAddress string `json:"sender_address"`

	RecipientName    string `json:"recipient_name"`
	RecipientEmail   string `json:"recipient_email"`
	RecipientPhone   string `json:"recipient_phone"`
	RecipientAddress string `json:"recipient_address"`

	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// MissingFields returns the names of required fields that are empty.
func (in CreateShipmentInput) MissingFields() []string {
	var missing []string
	require := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}

	require("sender_name", in.SenderName)
	require("sender_email", in.SenderEmail)
	require("sender_address", in.SenderAddress)
	require("recipient_name", in.RecipientName)
	require("recipient_address", in.RecipientAddress)

	return missing
}

// UpdateStatusInput carries the fields accepted on a status update.
type UpdateStatusInput struct {
	Status      Status   `json:"status"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
	Agent       string   `json:"agent"`
}

// ValidationError reports required fields missing from a request.
type ValidationError struct {
	Missing []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}
