package localstorage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *RedisStorage) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s := NewRedisStorage(rdb, "")
	t.Cleanup(func() { _ = s.Close() })
	return mr, s
}

func TestRedis_SetGetRemove(t *testing.T) {
	mr, s := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, s.SetItems(ctx, map[string]string{"accessToken": "abc", "x": "1"}))
	assert.Equal(t, "abc", mr.HGet(DefaultRedisNamespace, "accessToken"))

	v, ok, err := s.GetItem(ctx, "accessToken")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", v)

	require.NoError(t, s.RemoveItems(ctx, "accessToken", "missing"))
	_, ok, err = s.GetItem(ctx, "accessToken")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedis_EmptyArgsAreNoops(t *testing.T) {
	_, s := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, s.SetItems(ctx, nil))
	require.NoError(t, s.RemoveItems(ctx))
}

func TestRedis_Clear(t *testing.T) {
	mr, s := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, s.SetItems(ctx, map[string]string{"a": "1"}))
	require.NoError(t, s.Clear(ctx))
	assert.False(t, mr.Exists(DefaultRedisNamespace))
}

func TestRedis_ServerDown_ReturnsError(t *testing.T) {
	mr, s := newTestRedis(t)
	mr.Close()

	_, _, err := s.GetItem(context.Background(), "accessToken")
	require.ErrorContains(t, err, "failed to get item[accessToken]")
}

func TestOpenRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	s, err := OpenRedis(context.Background(), "redis://"+mr.Addr(), "custom")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SetItems(context.Background(), map[string]string{"k": "v"}))
	assert.Equal(t, "v", mr.HGet("custom", "k"))
	assert.True(t, s.Persistent())

	_, err = OpenRedis(context.Background(), "not a url", "")
	require.Error(t, err)
}
