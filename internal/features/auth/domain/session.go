package domain

import (
	"errors"
	"time"
)

// ErrInvalidCredentials is returned when the email/password pair is rejected.
// Callers surface it as a generic message so login failures leak nothing.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidSession is returned when a session token cannot be verified.
var ErrInvalidSession = errors.New("invalid session")

// Session represents an authenticated admin session.
type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Valid reports whether the session has not expired yet.
func (s *Session) Valid() bool {
	return time.Now().UTC().Before(s.ExpiresAt)
}
