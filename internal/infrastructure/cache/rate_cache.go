// Package cache shares the exchange-rate list between API replicas through Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fredriick/Electrify-sub009/internal/domain/currency"
	"github.com/fredriick/Electrify-sub009/internal/pkg/config"
	"github.com/fredriick/Electrify-sub009/internal/pkg/logger"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
)

// RatesKey is the Redis key holding the encoded rate list
const RatesKey = "electrify:exchange_rates"

type cachedRate struct {
	Currency  string          `json:"currency"`
	Rate      decimal.Decimal `json:"rate"`
	Source    string          `json:"source"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type redisRateCache struct {
	client *redis.Client
	key    string
	logger logger.Logger
}

// NewRedisClient connects to the configured Redis instance and pings it
func NewRedisClient(ctx context.Context, settings *config.RedisSettings) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     settings.Addr,
		Password: settings.Password,
		DB:       settings.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", settings.Addr, err)
	}
	return client, nil
}

// NewRedisRateCache creates a RateCache on top of client
func NewRedisRateCache(client *redis.Client, logger logger.Logger) (currency.RateCache, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	return &redisRateCache{
		client: client,
		key:    RatesKey,
		logger: logger,
	}, nil
}

// Get returns the cached rates; ok is false on a cache miss
func (c *redisRateCache) Get(ctx context.Context) ([]*currency.ExchangeRate, bool, error) {
	raw, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read exchange rates from cache: %w", err)
	}

	var entries []cachedRate
	if err := json.Unmarshal(raw, &entries); err != nil {
		// a corrupt entry is treated as a miss and overwritten on the next Set
		c.logger.Warn("Discarding undecodable exchange rate cache entry: ", err)
		return nil, false, nil
	}

	rates := make([]*currency.ExchangeRate, len(entries))
	for i, e := range entries {
		rates[i] = &currency.ExchangeRate{
			Currency:  e.Currency,
			Rate:      e.Rate,
			Source:    e.Source,
			UpdatedAt: e.UpdatedAt,
		}
	}
	return rates, true, nil
}

func (c *redisRateCache) Set(ctx context.Context, rates []*currency.ExchangeRate, ttl time.Duration) error {
	entries := make([]cachedRate, len(rates))
	for i, r := range rates {
		entries[i] = cachedRate{
			Currency:  r.Currency,
			Rate:      r.Rate,
			Source:    r.Source,
			UpdatedAt: r.UpdatedAt,
		}
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode exchange rates: %w", err)
	}
	if err := c.client.Set(ctx, c.key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write exchange rates to cache: %w", err)
	}
	return nil
}

func (c *redisRateCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate exchange rate cache: %w", err)
	}
	c.logger.Debug("Invalidated exchange rate cache")
	return nil
}
