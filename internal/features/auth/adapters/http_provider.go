package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"sge-logistics/internal/core/httpclient"
	"sge-logistics/internal/features/auth/domain"
)

// HTTPSessionProvider implements ports.SessionProvider against a hosted
// auth service.
type HTTPSessionProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPSessionProvider creates a new HTTPSessionProvider.
func NewHTTPSessionProvider(baseURL, apiKey string) *HTTPSessionProvider {
	return &HTTPSessionProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  httpclient.NewClient(30 * time.Second),
	}
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SignIn exchanges credentials for a session with the auth service.
func (p *HTTPSessionProvider) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	body, err := json.Marshal(signInRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("adapter: failed to marshal sign-in request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/sessions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("adapter: failed to create sign-in request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("adapter: sign-in request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, domain.ErrInvalidCredentials
	default:
		return nil, fmt.Errorf("adapter: sign-in returned status %d", resp.StatusCode)
	}

	var session sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("adapter: failed to decode sign-in response: %w", err)
	}

	return &domain.Session{
		Token:     session.Token,
		Email:     session.Email,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// GetSession resolves a token to its session with the auth service.
func (p *HTTPSessionProvider) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/sessions/current", nil)
	if err != nil {
		return nil, fmt.Errorf("adapter: failed to create session request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Api-Key", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("adapter: session request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return nil, domain.ErrInvalidSession
	default:
		return nil, fmt.Errorf("adapter: session lookup returned status %d", resp.StatusCode)
	}

	var session sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("adapter: failed to decode session response: %w", err)
	}

	return &domain.Session{
		Token:     session.Token,
		Email:     session.Email,
		ExpiresAt: session.ExpiresAt,
	}, nil
}
