package cache_test

import (
	"context"
	"testing"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Caja-api/internal/infrastructure/cache"
)

// Sin servidor, el cache devuelve error y el caso de uso decide qué hacer.
func TestRedisReportCache_SinServidor(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	c := cache.NewRedisReportCacheWithClient(client)
	t.Cleanup(func() { _ = c.Close() })
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "s1")
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Error(t, c.Ping(ctx))
	assert.NoError(t, c.Set(ctx, "s1", nil, time.Minute))
}
