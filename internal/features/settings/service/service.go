package service

import (
	"context"
	"fmt"

	"sge-logistics/internal/features/settings/domain"
	"sge-logistics/internal/features/settings/ports"
)

// SettingsServiceImpl implements ports.SettingsService.
type SettingsServiceImpl struct {
	repo ports.SettingsRepository
}

// NewSettingsService creates a new SettingsServiceImpl.
func NewSettingsService(repo ports.SettingsRepository) *SettingsServiceImpl {
	return &SettingsServiceImpl{repo: repo}
}

// GetMapProvider returns the stored setting, or the default when unset.
func (s *SettingsServiceImpl) GetMapProvider(ctx context.Context) (*domain.MapProviderSetting, error) {
	setting, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get map provider: %w", err)
	}
	if setting == nil {
		return &domain.MapProviderSetting{Provider: domain.DefaultMapProvider}, nil
	}
	return setting, nil
}

// SetMapProvider validates and stores the provider choice.
func (s *SettingsServiceImpl) SetMapProvider(ctx context.Context, provider domain.MapProvider) (*domain.MapProviderSetting, error) {
	setting, err := domain.NewMapProviderSetting(provider)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Upsert(ctx, setting); err != nil {
		return nil, fmt.Errorf("service: failed to save map provider: %w", err)
	}

	return setting, nil
}
