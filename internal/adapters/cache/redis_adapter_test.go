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

func newTestAdapter(t *testing.T) (*RedisAdapter, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	return &RedisAdapter{client: client}, server
}

func TestRedisAdapter_SetAndGet(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	err := adapter.Set(ctx, "hospital:h-1", []byte(`{"id":"h-1"}`), 300)
	require.NoError(t, err)

	value, err := adapter.Get(ctx, "hospital:h-1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":"h-1"}`), value)
}

func TestRedisAdapter_Get_MissingKey(t *testing.T) {
	adapter, _ := newTestAdapter(t)

	_, err := adapter.Get(context.Background(), "hospital:missing")

	assert.Error(t, err)
}

func TestRedisAdapter_Set_Expiration(t *testing.T) {
	adapter, server := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "schemes:list", []byte("[]"), 60))

	server.FastForward(61 * time.Second)

	_, err := adapter.Get(ctx, "schemes:list")
	assert.Error(t, err)
}

func TestRedisAdapter_Delete(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "hospital:h-1", []byte("x"), 300))
	require.NoError(t, adapter.Delete(ctx, "hospital:h-1"))

	exists, err := adapter.Exists(ctx, "hospital:h-1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRedisAdapter_GetMulti(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "hospital:h-1", []byte("one"), 300))
	require.NoError(t, adapter.Set(ctx, "hospital:h-2", []byte("two"), 300))

	values, err := adapter.GetMulti(ctx, []string{"hospital:h-1", "hospital:missing", "hospital:h-2"})
	require.NoError(t, err)

	assert.Len(t, values, 2)
	assert.Equal(t, []byte("one"), values["hospital:h-1"])
	assert.Equal(t, []byte("two"), values["hospital:h-2"])
	assert.NotContains(t, values, "hospital:missing")
}

func TestRedisAdapter_SetMulti(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	items := map[string][]byte{
		"hospital:h-1": []byte("one"),
		"hospital:h-2": []byte("two"),
	}
	require.NoError(t, adapter.SetMulti(ctx, items, 300))

	value, err := adapter.Get(ctx, "hospital:h-2")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), value)
}

func TestRedisAdapter_DeletePattern(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "hospitals:list:chennai", []byte("a"), 300))
	require.NoError(t, adapter.Set(ctx, "hospitals:list:trichy", []byte("b"), 300))
	require.NoError(t, adapter.Set(ctx, "schemes:list", []byte("c"), 300))

	require.NoError(t, adapter.DeletePattern(ctx, "hospitals:list:*"))

	exists, err := adapter.Exists(ctx, "hospitals:list:chennai")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = adapter.Exists(ctx, "schemes:list")
	require.NoError(t, err)
	assert.True(t, exists)
}
