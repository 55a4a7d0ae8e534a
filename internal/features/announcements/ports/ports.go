package ports

import (
	"context"

	"sge-logistics/internal/features/announcements/domain"
)

// AnnouncementService defines the primary port for the site announcement.
type AnnouncementService interface {
	Publish(ctx context.Context, title, body string, kind domain.Kind, ttlSeconds int) (*domain.Announcement, error)
	Current(ctx context.Context) (*domain.Announcement, error)
	Clear(ctx context.Context) error
}

// AnnouncementRepository defines the secondary port for announcement storage.
// Current returns (nil, nil) when no announcement is active.
type AnnouncementRepository interface {
	Save(ctx context.Context, a *domain.Announcement) error
	Current(ctx context.Context) (*domain.Announcement, error)
	Delete(ctx context.Context) error
}
