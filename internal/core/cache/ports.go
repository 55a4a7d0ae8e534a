package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key does not exist or has expired.
// Callers that treat a miss as "no value" should check for it with errors.Is.
var ErrMiss = errors.New("cache: miss")

// Cache is the port for the key-value cache backing dashboard stats and the
// site announcement. Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves the value stored under key, or ErrMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key. A ttl of 0 means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Ping checks that the backing store is reachable.
	Ping(ctx context.Context) error

	// Close releases the underlying connection.
	Close() error
}
