package localstorage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_Lifecycle(t *testing.T) {
	m := NewMemoryStorage()
	ctx := context.Background()

	assert.False(t, m.Persistent())

	require.NoError(t, m.SetItems(ctx, map[string]string{"a": "1", "b": "2"}))
	v, ok, err := m.GetItem(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	require.NoError(t, m.RemoveItems(ctx, "a", "absent"))
	_, ok, _ = m.GetItem(ctx, "a")
	assert.False(t, ok)

	require.NoError(t, m.Clear(ctx))
	_, ok, _ = m.GetItem(ctx, "b")
	assert.False(t, ok)
	require.NoError(t, m.Close())
}

func TestOpen_Drivers(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, DriverMemory, "", "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStorage{}, s)

	s, err = Open(ctx, DriverSQLite, ":memory:", "")
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStorage{}, s)
	require.NoError(t, s.Close())

	_, err = Open(ctx, "etcd", "", "")
	require.ErrorIs(t, err, ErrUnknownDriver)
}
