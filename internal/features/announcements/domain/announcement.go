package domain

import (
	"errors"
	"time"
)

// Kind classifies an announcement for front-end styling.
type Kind string

const (
	KindNotice      Kind = "notice"
	KindMaintenance Kind = "maintenance"
	KindAlert       Kind = "alert"
)

var (
	ErrInvalidKind  = errors.New("invalid announcement kind")
	ErrMissingTitle = errors.New("announcement title is required")
	ErrInvalidTTL   = errors.New("announcement ttl cannot be negative")
)

// Announcement is the single site-wide banner shown on every page,
// used for service disruptions, holiday schedules and similar notices.
type Announcement struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Kind  Kind   `json:"kind"`
	// TTLSeconds is how long the announcement stays up. 0 keeps it until
	// it is cleared manually.
	TTLSeconds int       `json:"ttl_seconds,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewAnnouncement validates and builds an announcement.
func NewAnnouncement(title, body string, kind Kind, ttlSeconds int) (*Announcement, error) {
	if title == "" {
		return nil, ErrMissingTitle
	}

	switch kind {
	case KindNotice, KindMaintenance, KindAlert:
	default:
		return nil, ErrInvalidKind
	}

	if ttlSeconds < 0 {
		return nil, ErrInvalidTTL
	}

	return &Announcement{
		Title:      title,
		Body:       body,
		Kind:       kind,
		TTLSeconds: ttlSeconds,
		CreatedAt:  time.Now().UTC(),
	}, nil
}
