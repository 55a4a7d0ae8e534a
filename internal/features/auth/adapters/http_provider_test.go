package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sge-logistics/internal/features/auth/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSignIn_Success(t *testing.T) {
	expiresAt := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/sessions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req signInRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "admin@sgelogistics.com", req.Email)

		json.NewEncoder(w).Encode(sessionResponse{
			Token:     "remote-token",
			Email:     req.Email,
			ExpiresAt: expiresAt,
		})
	}))
	defer server.Close()

	provider := NewHTTPSessionProvider(server.URL, "test-key")

	session, err := provider.SignIn(context.Background(), "admin@sgelogistics.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "remote-token", session.Token)
	assert.Equal(t, "admin@sgelogistics.com", session.Email)
	assert.Equal(t, expiresAt, session.ExpiresAt)
}

func TestHTTPSignIn_UnauthorizedMapsToInvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	provider := NewHTTPSessionProvider(server.URL, "test-key")

	session, err := provider.SignIn(context.Background(), "admin@sgelogistics.com", "wrong")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Nil(t, session)
}

func TestHTTPSignIn_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	provider := NewHTTPSessionProvider(server.URL, "test-key")

	session, err := provider.SignIn(context.Background(), "admin@sgelogistics.com", "secret")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Nil(t, session)
}

func TestHTTPGetSession_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sessions/current", r.URL.Path)
		assert.Equal(t, "Bearer some-token", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(sessionResponse{
			Token:     "some-token",
			Email:     "admin@sgelogistics.com",
			ExpiresAt: time.Now().UTC().Add(time.Hour),
		})
	}))
	defer server.Close()

	provider := NewHTTPSessionProvider(server.URL, "test-key")

	session, err := provider.GetSession(context.Background(), "some-token")

	require.NoError(t, err)
	assert.Equal(t, "admin@sgelogistics.com", session.Email)
}

func TestHTTPGetSession_UnauthorizedMapsToInvalidSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	provider := NewHTTPSessionProvider(server.URL, "test-key")

	session, err := provider.GetSession(context.Background(), "expired-token")

	assert.ErrorIs(t, err, domain.ErrInvalidSession)
	assert.Nil(t, session)
}
