package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*ProfileCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewWithClient(client, 5*time.Minute), mr
}

func TestProfileRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	var out map[string]interface{}
	ok, err := c.GetProfile(ctx, 1, &out)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.SetProfile(ctx, 1, map[string]interface{}{"name": "Asha"}))

	ok, err = c.GetProfile(ctx, 1, &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Asha", out["name"])
}

func TestInvalidateUserDropsBothProjections(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetProfile(ctx, 1, map[string]string{"k": "v"}))
	require.NoError(t, c.SetUserInfo(ctx, 1, map[string]string{"k": "v"}))
	require.NoError(t, c.InvalidateUser(ctx, 1))

	var out map[string]string
	ok, err := c.GetProfile(ctx, 1, &out)
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = c.GetUserInfo(ctx, 1, &out)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEntriesExpire(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetProfile(ctx, 1, map[string]string{"k": "v"}))
	mr.FastForward(6 * time.Minute)

	var out map[string]string
	ok, err := c.GetProfile(ctx, 1, &out)
	require.NoError(t, err)
	assert.False(t, ok)
}
