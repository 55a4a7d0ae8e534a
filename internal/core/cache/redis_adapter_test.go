package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T) (*RedisAdapter, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	adapter, err := NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return adapter, mr
}

func TestRedisAdapter_SetGet(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "greeting", []byte("hello"), 10*time.Second))

	got, err := adapter.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)
}

func TestRedisAdapter_MissingKeyIsErrMiss(t *testing.T) {
	adapter, _ := newTestAdapter(t)

	_, err := adapter.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestRedisAdapter_Delete(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "doomed", []byte("value"), 0))
	require.NoError(t, adapter.Delete(ctx, "doomed"))

	_, err := adapter.Get(ctx, "doomed")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestRedisAdapter_TTLExpiry(t *testing.T) {
	adapter, mr := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "short-lived", []byte("soon gone"), time.Second))

	_, err := adapter.Get(ctx, "short-lived")
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)

	_, err = adapter.Get(ctx, "short-lived")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestRedisAdapter_Ping(t *testing.T) {
	adapter, _ := newTestAdapter(t)

	assert.NoError(t, adapter.Ping(context.Background()))
}

func TestRedisAdapter_InvalidURL(t *testing.T) {
	_, err := NewRedisAdapter("invalid://url")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse Redis URL")
}
