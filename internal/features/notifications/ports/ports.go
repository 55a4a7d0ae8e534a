package ports

import (
	"context"

	"sge-logistics/internal/features/notifications/domain"
)

// Mailer defines the secondary port for sending a single email.
type Mailer interface {
	Send(ctx context.Context, msg domain.Message) error
}
