package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()

	_, ok, err := c.Get(ctx, KeyClients)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, KeyClients, []byte(`[]`), time.Minute))
	v, ok, err := c.Get(ctx, KeyClients)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(v))

	require.NoError(t, c.Delete(ctx, KeyClients))
	_, ok, _ = c.Get(ctx, KeyClients)
	assert.False(t, ok)
}

func TestMemoryCache_Expira(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, KeyServices, []byte(`x`), time.Second))
	now = now.Add(2 * time.Second)

	_, ok, err := c.Get(ctx, KeyServices)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNoopCache_NuncaDevuelveValor(t *testing.T) {
	ctx := context.Background()
	c := NewNoop()
	require.NoError(t, c.Set(ctx, KeyMasters, []byte(`x`), time.Minute))
	_, ok, err := c.Get(ctx, KeyMasters)
	require.NoError(t, err)
	assert.False(t, ok)
}
