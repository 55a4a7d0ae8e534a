package domain

import (
	"errors"
	"time"
)

var (
	// ErrPostNotFound is returned when no post matches a slug.
	ErrPostNotFound = errors.New("blog post not found")
	// ErrSlugTaken is returned when creating a post with an existing slug.
	ErrSlugTaken = errors.New("slug already in use")
)

// BlogPost represents an article on the marketing site.
type BlogPost struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	Slug        string     `gorm:"uniqueIndex;size:160" json:"slug"`
	Title       string     `gorm:"size:256" json:"title"`
	Excerpt     string     `gorm:"size:512" json:"excerpt"`
	Content     string     `json:"content"`
	CoverImage  string     `gorm:"size:512" json:"cover_image"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
