package adapters

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"sge-logistics/internal/features/auth/domain"

	"github.com/golang-jwt/jwt/v5"
)

const demoSessionTTL = 24 * time.Hour

// DemoSessionProvider issues and verifies locally signed session tokens.
// It accepts a single configured email/password pair and is used when no
// hosted auth provider is configured.
type DemoSessionProvider struct {
	secret   []byte
	email    string
	password string
}

// NewDemoSessionProvider creates a DemoSessionProvider.
func NewDemoSessionProvider(secret, email, password string) *DemoSessionProvider {
	return &DemoSessionProvider{
		secret:   []byte(secret),
		email:    email,
		password: password,
	}
}

// SignIn verifies the demo credentials and issues a signed token.
func (p *DemoSessionProvider) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(p.email)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(p.password)) == 1
	if !emailOK || !passwordOK {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	expiresAt := now.Add(demoSessionTTL)

	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return nil, fmt.Errorf("adapter: failed to sign session token: %w", err)
	}

	return &domain.Session{
		Token:     token,
		Email:     email,
		ExpiresAt: expiresAt,
	}, nil
}

// GetSession verifies a token and reconstructs its session.
func (p *DemoSessionProvider) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	var claims jwt.RegisteredClaims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid || claims.ExpiresAt == nil {
		return nil, domain.ErrInvalidSession
	}

	return &domain.Session{
		Token:     token,
		Email:     claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
