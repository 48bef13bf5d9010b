package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokemon-5e/internal/redis"
)

func TestNewClientRequiresEndpoint(t *testing.T) {
	client, err := redis.NewClient("", nil)
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestNewClientRejectsNegativeDB(t *testing.T) {
	client, err := redis.NewClient("localhost:6379", &redis.Options{DB: -1})
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestNewClientRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), &redis.Options{DB: 0})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, client.Set(ctx, "k", "v", time.Minute).Err())

	got, err := client.Get(ctx, "k").Result()
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	_, err = client.Get(ctx, "missing").Result()
	assert.ErrorIs(t, err, redis.Nil)
}
