package service

import (
	"context"
	"fmt"

	"sge-logistics/internal/features/announcements/domain"
	"sge-logistics/internal/features/announcements/ports"
)

// AnnouncementServiceImpl implements ports.AnnouncementService.
type AnnouncementServiceImpl struct {
	repo ports.AnnouncementRepository
}

// NewAnnouncementService creates a new AnnouncementServiceImpl.
func NewAnnouncementService(repo ports.AnnouncementRepository) *AnnouncementServiceImpl {
	return &AnnouncementServiceImpl{
		repo: repo,
	}
}

// Publish validates and stores the announcement, replacing any active one.
func (s *AnnouncementServiceImpl) Publish(ctx context.Context, title, body string, kind domain.Kind, ttlSeconds int) (*domain.Announcement, error) {
	announcement, err := domain.NewAnnouncement(title, body, kind, ttlSeconds)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, announcement); err != nil {
		return nil, fmt.Errorf("service: failed to save announcement: %w", err)
	}

	return announcement, nil
}

// Current returns the active announcement, or nil when none is up.
func (s *AnnouncementServiceImpl) Current(ctx context.Context) (*domain.Announcement, error) {
	announcement, err := s.repo.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get announcement: %w", err)
	}

	return announcement, nil
}

// Clear removes the active announcement.
func (s *AnnouncementServiceImpl) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx); err != nil {
		return fmt.Errorf("service: failed to clear announcement: %w", err)
	}

	return nil
}
