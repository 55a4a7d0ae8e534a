package domain

import (
	"errors"
	"time"
)

// MapProvider identifies which map service the site renders tracking maps with.
type MapProvider string

const (
	MapProviderGoogle        MapProvider = "google"
	MapProviderOpenStreetMap MapProvider = "openstreetmap"
	MapProviderMapbox        MapProvider = "mapbox"
)

// ErrInvalidMapProvider is returned for providers outside the known set.
var ErrInvalidMapProvider = errors.New("invalid map provider")

// DefaultMapProvider is used when no setting has been stored yet.
const DefaultMapProvider = MapProviderOpenStreetMap

// MapProviderSetting is the single-row site setting selecting the map provider.
type MapProviderSetting struct {
	ID        uint        `gorm:"primaryKey" json:"-"`
	Provider  MapProvider `gorm:"size:32" json:"provider"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// NewMapProviderSetting validates the provider and builds a setting.
func NewMapProviderSetting(provider MapProvider) (*MapProviderSetting, error) {
	switch provider {
	case MapProviderGoogle, MapProviderOpenStreetMap, MapProviderMapbox:
	default:
		return nil, ErrInvalidMapProvider
	}

	return &MapProviderSetting{
		Provider:  provider,
		UpdatedAt: time.Now().UTC(),
	}, nil
}
