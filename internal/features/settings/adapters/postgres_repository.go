package adapters

import (
	"context"
	"errors"
	"fmt"

	"sge-logistics/internal/features/settings/domain"

	"gorm.io/gorm"
)

// settingRowID pins the settings table to a single row.
const settingRowID = 1

// PostgresSettingsRepository implements ports.SettingsRepository on GORM.
type PostgresSettingsRepository struct {
	db *gorm.DB
}

// NewPostgresSettingsRepository creates a new PostgresSettingsRepository.
func NewPostgresSettingsRepository(db *gorm.DB) *PostgresSettingsRepository {
	return &PostgresSettingsRepository{db: db}
}

// Get returns the stored setting, or (nil, nil) when unset.
func (r *PostgresSettingsRepository) Get(ctx context.Context) (*domain.MapProviderSetting, error) {
	var setting domain.MapProviderSetting
	err := r.db.WithContext(ctx).First(&setting, "id = ?", settingRowID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query map provider setting: %w", err)
	}
	return &setting, nil
}

// Upsert writes the single settings row.
func (r *PostgresSettingsRepository) Upsert(ctx context.Context, setting *domain.MapProviderSetting) error {
	setting.ID = settingRowID
	if err := r.db.WithContext(ctx).Save(setting).Error; err != nil {
		return fmt.Errorf("failed to save map provider setting: %w", err)
	}
	return nil
}
