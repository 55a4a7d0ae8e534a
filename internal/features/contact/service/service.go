package service

import (
	"context"
	"fmt"
	"time"

	"sge-logistics/internal/features/contact/domain"
	"sge-logistics/internal/features/contact/ports"

	"github.com/google/uuid"
)

// ContactServiceImpl implements ports.ContactService.
type ContactServiceImpl struct {
	repo     ports.ContactRepository
	notifier ports.Notifier
}

// listCap mirrors the soft row cap used on other admin list queries.
const listCap = 500

// NewContactService creates a new ContactServiceImpl. notifier may be nil.
func NewContactService(repo ports.ContactRepository, notifier ports.Notifier) *ContactServiceImpl {
	return &ContactServiceImpl{
		repo:     repo,
		notifier: notifier,
	}
}

// SubmitMessage validates and stores a contact message, then fires the
// admin notification without blocking.
func (s *ContactServiceImpl) SubmitMessage(ctx context.Context, msg *domain.ContactMessage) error {
	if missing := msg.MissingFields(); len(missing) > 0 {
		return &domain.ValidationError{Missing: missing}
	}

	msg.ID = uuid.NewString()
	msg.CreatedAt = time.Now().UTC()

	if err := s.repo.Create(ctx, msg); err != nil {
		return fmt.Errorf("failed to save contact message: %w", err)
	}

	if s.notifier != nil {
		s.notifier.ContactReceived(msg)
	}

	return nil
}

// ListMessages returns stored messages, newest first.
func (s *ContactServiceImpl) ListMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	messages, err := s.repo.List(ctx, listCap)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return messages, nil
}
