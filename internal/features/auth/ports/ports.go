package ports

import (
	"context"

	"sge-logistics/internal/features/auth/domain"
)

// SessionProvider defines the secondary port for session management.
// Implementations verify credentials and resolve tokens back to sessions.
type SessionProvider interface {
	// SignIn exchanges credentials for a session. Rejected credentials
	// return domain.ErrInvalidCredentials.
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)

	// GetSession resolves a token to its session. Unknown, malformed or
	// expired tokens return domain.ErrInvalidSession.
	GetSession(ctx context.Context, token string) (*domain.Session, error)
}
