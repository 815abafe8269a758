// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

package tuning

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/lukavetter/torqline/internal/platform/constants"
)

// RedisCache implements [Cache] on Redis with a short TTL.
//
// It is the server-side replacement for the session caching the embedding
// widget used to do: repeated opens of the same engine skip the multi-table
// read. Cache failures are logged at debug level and otherwise invisible —
// a broken Redis degrades to uncached reads, never to request failures.
type RedisCache struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisCache creates a Redis-backed configuration cache.
func NewRedisCache(client *redis.Client, logger *slog.Logger) *RedisCache {
	return &RedisCache{client: client, logger: logger}
}

// Get returns the cached configuration for engineID, or ok == false on a
// miss, a decode failure, or any backend error.
func (cache *RedisCache) Get(context context.Context, engineID string) (*Configuration, bool) {
	key := constants.RedisPrefixConfig + engineID

	payload, err := cache.client.Get(context, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			cache.logger.Debug("config_cache_get_failed", slog.String("engine_id", engineID), slog.Any("error", err))
		}
		return nil, false
	}

	configuration := &Configuration{}
	if err := json.Unmarshal(payload, configuration); err != nil {
		// A corrupt entry is dropped so the next assembly overwrites it.
		cache.logger.Debug("config_cache_decode_failed", slog.String("engine_id", engineID), slog.Any("error", err))
		_ = cache.client.Del(context, key).Err()
		return nil, false
	}

	return configuration, true
}

// Set stores the configuration under the engine's key with the standard TTL.
func (cache *RedisCache) Set(context context.Context, engineID string, configuration *Configuration) {
	payload, err := json.Marshal(configuration)
	if err != nil {
		cache.logger.Debug("config_cache_encode_failed", slog.String("engine_id", engineID), slog.Any("error", err))
		return
	}

	key := constants.RedisPrefixConfig + engineID
	if err := cache.client.Set(context, key, payload, constants.ConfigCacheTTL).Err(); err != nil {
		cache.logger.Debug("config_cache_set_failed", slog.String("engine_id", engineID), slog.Any("error", err))
	}
}

// Flush removes every cached configuration. The importer calls this after a
// bulk load so stale assemblies do not outlive a catalog refresh.
func Flush(context context.Context, client *redis.Client) error {
	iter := client.Scan(context, 0, constants.RedisPrefixConfig+"*", 0).Iterator()
	for iter.Next(context) {
		if err := client.Del(context, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
