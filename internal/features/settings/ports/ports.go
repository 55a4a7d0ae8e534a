package ports

import (
	"context"

	"sge-logistics/internal/features/settings/domain"
)

// SettingsService defines the primary port for site settings.
type SettingsService interface {
	GetMapProvider(ctx context.Context) (*domain.MapProviderSetting, error)
	SetMapProvider(ctx context.Context, provider domain.MapProvider) (*domain.MapProviderSetting, error)
}

// SettingsRepository defines the secondary port for settings storage.
// Get returns (nil, nil) when nothing has been stored yet.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.MapProviderSetting, error)
	Upsert(ctx context.Context, setting *domain.MapProviderSetting) error
}
