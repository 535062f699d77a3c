package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/jsonml/pkg/adapters/redis"
	"github.com/aretw0/jsonml/pkg/domain"
	"github.com/aretw0/jsonml/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	return mr, backend.NewClient(&backend.Options{Addr: mr.Addr()})
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newClient(t)

	store := redis.NewFromClient(client)
	ports.RunTableStoreContract(t, store)
}

func TestRedisStore_TokensSurvive(t *testing.T) {
	_, client := newClient(t)
	store := redis.NewFromClient(client)
	ctx := context.Background()

	tokens := map[domain.Token]any{
		"header-tag":  []any{domain.Token("span-tag"), domain.Token("header-style")},
		"literal":     ":not-a-token",
		"empty-label": "",
	}
	require.NoError(t, store.Save(ctx, "theme", tokens))

	loaded, err := store.Load(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, tokens, loaded)
}

func TestRedisStore_EmptyTable(t *testing.T) {
	_, client := newClient(t)
	store := redis.NewFromClient(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "empty", nil))

	loaded, err := store.Load(ctx, "empty")
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "short-lived", map[domain.Token]any{"a": "1"}))

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, names, "short-lived")

	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, "short-lived")
	assert.ErrorIs(t, err, domain.ErrTableNotFound)

	// The index is pruned against wall clock time.
	time.Sleep(1200 * time.Millisecond)

	names, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client, redis.WithPrefix("custom:app:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "theme", map[domain.Token]any{"a": "1"}))

	assert.True(t, mr.Exists("custom:app:table:theme"), "Expected key with custom prefix to exist")
	assert.True(t, mr.Exists("custom:app:index"), "Expected index with custom prefix to exist")

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"theme"}, names)
}

func TestRedisStore_TableNamedIndex(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "theme", map[domain.Token]any{"a": "1"}))
	require.NoError(t, store.Save(ctx, "index", map[domain.Token]any{"b": "2"}))

	assert.Equal(t, "zset", mr.Type("jsonml:tables:index"))
	assert.Equal(t, "hash", mr.Type("jsonml:tables:table:index"))

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"index", "theme"}, names)
}
