//go:build unit
// +build unit

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/fredriick/Electrify-sub009/internal/pkg/config"
	"github.com/fredriick/Electrify-sub009/internal/pkg/testutil"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func TestNewRedisRateCache_RequiresClient(t *testing.T) {
	_, err := NewRedisRateCache(nil, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}

func TestRedisRateCache_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
	defer client.Close()

	c, err := NewRedisRateCache(client, testutil.SetupTestLogger(t))
	assert.NoError(t, err)

	_, ok, err := c.Get(context.Background())
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNewRedisClient_PingFails(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := NewRedisClient(ctx, &config.RedisSettings{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}
