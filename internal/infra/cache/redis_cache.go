package cache

import (
	"context"
	"time"

	"snapcase/internal/domain/repository"
	"snapcase/internal/errors"

	"github.com/redis/go-redis/v9"
)

// scanBatchSize bounds how many keys each SCAN round trip returns during
// pattern invalidation.
const scanBatchSize = 200

// redisCache implements the domain.Cache interface on top of go-redis.
type redisCache struct {
	client *redis.Client
}

// NewRedisCache is the constructor for redisCache.
func NewRedisCache(client *redis.Client) repository.Cache {
	return &redisCache{client: client}
}

// Get retrieves the value stored under key. A missing key is reported as
// repository.ErrCacheMiss so callers never see the driver's sentinel.
func (c *redisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", repository.ErrCacheMiss
		}

		return "", errors.Wrap(err, "failed to get cache key")
	}

	return value, nil
}

// Set stores value under key with the given TTL.
func (c *redisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to set cache key")
	}

	return nil
}

// DeleteByPattern removes every key matching the glob pattern. It walks the
// keyspace with SCAN instead of KEYS so invalidation never blocks the server,
// deleting in batches as it goes. Entries written concurrently with the scan
// may survive until their TTL expires; the TTL bounds that staleness.
func (c *redisCache) DeleteByPattern(ctx context.Context, pattern string) error {
	iter := c.client.Scan(ctx, 0, pattern, scanBatchSize).Iterator()

	batch := make([]string, 0, scanBatchSize)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) >= scanBatchSize {
			if err := c.client.Del(ctx, batch...).Err(); err != nil {
				return errors.Wrap(err, "failed to delete cache keys")
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return errors.Wrap(err, "failed to scan cache keys")
	}

	if len(batch) > 0 {
		if err := c.client.Del(ctx, batch...).Err(); err != nil {
			return errors.Wrap(err, "failed to delete cache keys")
		}
	}

	return nil
}
