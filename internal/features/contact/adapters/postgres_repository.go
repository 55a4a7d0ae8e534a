package adapters

import (
	"context"
	"fmt"

	"sge-logistics/internal/features/contact/domain"

	"gorm.io/gorm"
)

// PostgresContactRepository implements ports.ContactRepository on GORM.
type PostgresContactRepository struct {
	db *gorm.DB
}

// NewPostgresContactRepository creates a new PostgresContactRepository.
func NewPostgresContactRepository(db *gorm.DB) *PostgresContactRepository {
	return &PostgresContactRepository{db: db}
}

// Create inserts a contact message.
func (r *PostgresContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return fmt.Errorf("failed to insert contact message: %w", err)
	}
	return nil
}

// List returns messages newest first, up to limit.
func (r *PostgresContactRepository) List(ctx context.Context, limit int) ([]domain.ContactMessage, error) {
	var messages []domain.ContactMessage
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return messages, nil
}
