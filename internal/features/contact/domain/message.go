package domain

import (
	"strings"
	"time"
)

// ContactMessage represents a contact-form submission.
type ContactMessage struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:128" json:"name"`
	Email     string    `gorm:"size:128" json:"email"`
	Phone     string    `gorm:"size:32" json:"phone"`
	Subject   string    `gorm:"size:256" json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// MissingFields returns the names of required fields that are empty.
// Only email and message are mandatory on the public form.
func (m *ContactMessage) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(m.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(m.Message) == "" {
		missing = append(missing, "message")
	}
	return missing
}

// ValidationError reports required fields missing from a submission.
type ValidationError struct {
	Missing []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}
