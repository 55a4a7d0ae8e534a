package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sge-logistics/internal/core/cache"
	"sge-logistics/internal/features/announcements/domain"
)

const announcementKey = "site_announcement"

// RedisAnnouncementRepository stores the single site announcement in Redis.
// A TTL on the announcement maps directly onto key expiry, so expired
// announcements disappear without any cleanup job.
type RedisAnnouncementRepository struct {
	cache cache.Cache
}

// NewRedisAnnouncementRepository creates a new RedisAnnouncementRepository.
func NewRedisAnnouncementRepository(c cache.Cache) *RedisAnnouncementRepository {
	return &RedisAnnouncementRepository{
		cache: c,
	}
}

// Save stores the announcement, replacing any active one.
func (r *RedisAnnouncementRepository) Save(ctx context.Context, a *domain.Announcement) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal announcement: %w", err)
	}

	// TTLSeconds 0 means no expiry, which the cache treats the same way.
	ttl := time.Duration(a.TTLSeconds) * time.Second

	if err := r.cache.Set(ctx, announcementKey, data, ttl); err != nil {
		return fmt.Errorf("failed to save announcement: %w", err)
	}

	return nil
}

// Current retrieves the active announcement, or (nil, nil) when none is up.
func (r *RedisAnnouncementRepository) Current(ctx context.Context) (*domain.Announcement, error) {
	data, err := r.cache.Get(ctx, announcementKey)
	if err != nil {
		if errors.Is(err, cache.ErrMiss) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get announcement: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var announcement domain.Announcement
	if err := json.Unmarshal(data, &announcement); err != nil {
		return nil, fmt.Errorf("failed to unmarshal announcement: %w", err)
	}

	return &announcement, nil
}

// Delete removes the active announcement.
func (r *RedisAnnouncementRepository) Delete(ctx context.Context) error {
	if err := r.cache.Delete(ctx, announcementKey); err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	return nil
}
