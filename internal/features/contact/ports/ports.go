package ports

import (
	"context"

	"sge-logistics/internal/features/contact/domain"
)

// ContactService defines the primary port for contact-form operations.
type ContactService interface {
	SubmitMessage(ctx context.Context, msg *domain.ContactMessage) error
	ListMessages(ctx context.Context) ([]domain.ContactMessage, error)
}

// ContactRepository defines the secondary port for contact-message storage.
type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
	List(ctx context.Context, limit int) ([]domain.ContactMessage, error)
}

// Notifier receives fire-and-forget contact notifications.
type Notifier interface {
	ContactReceived(msg *domain.ContactMessage)
}
